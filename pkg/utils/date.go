package utils

import "time"

// Formatos aceitos para a data de uma visita: data simples (date picker) ou
// timestamp completo (clientes que enviam o horário junto).
var acceptedDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
}

// ParseDate converte a data recebida na API. String vazia vira o zero value,
// a validação de obrigatoriedade fica a cargo do handler.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr == "" {
		return &date, nil
	}

	var err error
	for _, layout := range acceptedDateLayouts {
		date, err = time.Parse(layout, dateStr)
		if err == nil {
			return &date, nil
		}
	}

	return nil, err
}
