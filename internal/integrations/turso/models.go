package turso

import "encoding/json"

// Row строка результата, NULL колонки отсутствуют
type Row map[string]string

type pipelineRequest struct {
	Requests []pipelineStep `json:"requests"`
}

type pipelineStep struct {
	Type string     `json:"type"`
	Stmt *statement `json:"stmt,omitempty"`
}

type statement struct {
	SQL  string     `json:"sql"`
	Args []argument `json:"args,omitempty"`
}

type argument struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type pipelineResponse struct {
	Results []pipelineResult `json:"results"`
}

type pipelineResult struct {
	Type     string         `json:"type"`
	Response *stepResponse  `json:"response,omitempty"`
	Error    *pipelineError `json:"error,omitempty"`
}

type pipelineError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type stepResponse struct {
	Type   string         `json:"type"`
	Result *executeResult `json:"result,omitempty"`
}

type executeResult struct {
	Cols []column `json:"cols"`
	Rows [][]cell `json:"rows"`
}

type column struct {
	Name string `json:"name"`
}

// cell значение колонки. integer и text приходят строкой, float числом.
type cell struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value,omitempty"`
}
