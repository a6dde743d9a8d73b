package turso

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client клиент HTTP pipeline API Turso (libSQL)
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Turso.
// libsql:// в URL заменяется на https://
func NewClient(databaseURL, token string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(httpURL(databaseURL), "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Execute выполняет одно выражение и возвращает строки результата
func (c *Client) Execute(ctx context.Context, sql string, args ...string) ([]Row, error) {
	if c.baseURL == "" || c.token == "" {
		return nil, ErrNotConfigured
	}

	body, err := json.Marshal(newPipeline(sql, args))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/pipeline", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		text, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: Turso API error: %d - %s", ErrInvalidResponse, resp.StatusCode, string(text))
	}

	var pr pipelineResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return pr.rows()
}

func newPipeline(sql string, args []string) pipelineRequest {
	stmt := &statement{SQL: sql}
	for _, a := range args {
		stmt.Args = append(stmt.Args, argument{Type: "text", Value: a})
	}
	return pipelineRequest{
		Requests: []pipelineStep{
			{Type: "execute", Stmt: stmt},
			{Type: "close"},
		},
	}
}

// rows разбирает результат первого шага pipeline
func (pr pipelineResponse) rows() ([]Row, error) {
	if len(pr.Results) == 0 {
		return []Row{}, nil
	}

	first := pr.Results[0]
	if first.Type == "error" && first.Error != nil {
		return nil, fmt.Errorf("%w: %s", ErrStatement, first.Error.Message)
	}
	if first.Response == nil || first.Response.Result == nil {
		return []Row{}, nil
	}

	result := first.Response.Result
	rows := make([]Row, 0, len(result.Rows))
	for _, r := range result.Rows {
		row := make(Row, len(result.Cols))
		for i, v := range r {
			if i >= len(result.Cols) {
				break
			}
			if s, ok := v.text(); ok {
				row[result.Cols[i].Name] = s
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// text значение ячейки строкой, false для NULL
func (c cell) text() (string, bool) {
	if c.Type == "null" || len(c.Value) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(c.Value, &s); err == nil {
		return s, true
	}
	// float и прочие JSON-числа
	return string(c.Value), true
}

func httpURL(url string) string {
	return strings.Replace(url, "libsql://", "https://", 1)
}
