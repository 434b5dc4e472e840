package utils

import "time"

// ParseDate converte datas vindas de parâmetros de query no formato
// 2006-01-02. Entrada vazia resulta em data zero, sem erro.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}
