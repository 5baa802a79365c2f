package output

import (
	"encoding/json"

	"rdbms/internal/executor"
)

func renderJSON(res executor.Result) (string, error) {
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b) + "\n", nil
}
