package utils

import (
	"bytes"
	"encoding/json"
	"reflect"

	"github.com/sirupsen/logrus"
)

// PrettyJson formata um valor como JSON indentado para logs de depuração
func PrettyJson(in any) string {
	var buffer []byte
	var err error

	if reflect.TypeOf(in) != reflect.TypeOf([]byte{}) {
		buffer, err = json.Marshal(in)
		if err != nil {
			logrus.Warn("Erro ao serializar valor para log:", err)
		}
	} else {
		buffer = in.([]byte)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, buffer, "", "\t"); err != nil {
		logrus.Warn("Erro ao indentar JSON para log:", err)
	}

	return out.String()
}
