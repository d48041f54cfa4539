package csvrows

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/jszwec/csvutil"

	"github.com/plazza-health/catalogue-go/cmd/internal/services/apierrors"
)

// Row — одна строка CSV: имя колонки -> значение ячейки после trim.
type Row map[string]string

// Get возвращает значение колонки (пустая строка, если колонки нет).
func (r Row) Get(key string) string {
	return r[key]
}

// RowReader лениво читает CSV построчно.
// Строки, у которых хотя бы один обязательный ключ пуст, не возвращаются
// из Next: они копятся и доступны через Dropped, чтобы партия могла
// отчитаться о них отдельно.
type RowReader struct {
	csv      *csv.Reader
	required []string
	headers  []string
	dropped  []Row
	started  bool
}

// NewRowReader создает читатель поверх r. requiredKeys — колонки, без
// значений в которых строка считается непригодной.
func NewRowReader(r io.Reader, requiredKeys ...string) *RowReader {
	cr := csv.NewReader(r)
	// Строки с неполным набором ячеек не считаются структурной ошибкой:
	// недостающие колонки читаются как пустые.
	cr.FieldsPerRecord = -1
	return &RowReader{
		csv:      cr,
		required: requiredKeys,
	}
}

// Headers возвращает заголовки CSV (доступны после первого Next).
func (rr *RowReader) Headers() []string {
	return rr.headers
}

// Dropped возвращает строки, отфильтрованные по обязательным ключам.
func (rr *RowReader) Dropped() []Row {
	return rr.dropped
}

// Next возвращает следующую пригодную строку. io.EOF означает конец файла.
// Любая структурная ошибка CSV оборачивается в apierrors.ParseError.
func (rr *RowReader) Next() (Row, error) {
	if !rr.started {
		if err := rr.readHeader(); err != nil {
			return nil, err
		}
	}

	for {
		record, err := rr.csv.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, io.EOF
			}
			return nil, apierrors.NewParseError(err, "malformed csv record")
		}

		row := make(Row, len(rr.headers))
		for i, h := range rr.headers {
			if i < len(record) {
				row[h] = strings.TrimSpace(record[i])
			} else {
				row[h] = ""
			}
		}

		if rr.hasRequired(row) {
			return row, nil
		}
		rr.dropped = append(rr.dropped, row)
	}
}

func (rr *RowReader) readHeader() error {
	rr.started = true
	header, err := rr.csv.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return io.EOF
		}
		return apierrors.NewParseError(err, "malformed csv header")
	}
	rr.headers = make([]string, len(header))
	for i, h := range header {
		rr.headers[i] = strings.TrimSpace(h)
	}
	return nil
}

func (rr *RowReader) hasRequired(row Row) bool {
	for _, key := range rr.required {
		if row[key] == "" {
			return false
		}
	}
	return true
}

// DecodeAll декодирует весь CSV в типизированные строки по csv-тегам.
// Используется стадиями первичной загрузки, где набор колонок фиксирован.
func DecodeAll[T any](r io.Reader) ([]T, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	dec, err := csvutil.NewDecoder(cr)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, apierrors.NewEmptyInputError("CSV file is empty")
		}
		return nil, apierrors.NewParseError(err, "malformed csv header")
	}

	var rows []T
	for {
		var row T
		if err := dec.Decode(&row); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, apierrors.NewParseError(err, "malformed csv record")
		}
		rows = append(rows, row)
	}
	return rows, nil
}
