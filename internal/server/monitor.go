package server

import (
	"encoding/json"
	"errors"
	"html/template"
	"log"
	"net/http"

	"ptpal/internal/store"
)

var monitorTemplate = template.Must(template.New("monitor").Parse(`<!DOCTYPE html>
<html>
<head>
<title>PT Pal Live Monitor</title>
<meta http-equiv="refresh" content="3">
<style>
body { background: #111; color: #f0f0f0; font-family: monospace; padding: 24px; }
.muted { color: #888; }
</style>
</head>
<body>
<h2>PT Pal Live Monitor</h2>
<p class="muted">Updates every 3 seconds</p>
{{if .SessionID}}<p>Session ID: {{.SessionID}}<br>Records: {{.Records}}</p>
<pre>{{range .Rows}}============================================================
[{{.Time}}] {{.Exercise}}  score {{.Score}}/5  {{if .Pass}}PASS{{else}}FAIL{{end}}
{{range .Reasons}}    - {{.}}
{{end}}{{end}}</pre>
{{else}}<p>No active session yet. Start a capture to begin.</p>
{{end}}</body>
</html>
`))

type monitorRow struct {
	Time     string
	Exercise string
	Score    int
	Pass     bool
	Reasons  []string
}

type monitorData struct {
	SessionID string
	Records   int
	Rows      []monitorRow
}

// toMonitorRow converts a stored result record for display.
func toMonitorRow(rec *store.ResultRecord) monitorRow {
	row := monitorRow{
		Time:     rec.CreatedAt.Local().Format("2006-01-02 15:04:05"),
		Exercise: rec.Exercise,
		Score:    rec.Score,
		Pass:     rec.Pass,
	}
	if err := json.Unmarshal([]byte(rec.Reasons), &row.Reasons); err != nil {
		row.Reasons = []string{rec.Reasons}
	}
	return row
}

// handleMonitor handles GET / and renders a self-refreshing view of the
// most recent capture session, newest result first.
func (s *Server) handleMonitor(w http.ResponseWriter, r *http.Request) {
	var data monitorData

	sessionID, err := s.config.Store.Results().LatestSessionID()
	switch {
	case errors.Is(err, store.ErrNotFound):
		// Nothing recorded yet; render the empty view
	case err != nil:
		http.Error(w, "Failed to load session data", http.StatusInternalServerError)
		return
	default:
		records, err := s.config.Store.Results().ListBySession(sessionID)
		if err != nil {
			http.Error(w, "Failed to load session data", http.StatusInternalServerError)
			return
		}

		data.SessionID = sessionID
		data.Records = len(records)
		data.Rows = make([]monitorRow, 0, len(records))
		for i := len(records) - 1; i >= 0; i-- {
			data.Rows = append(data.Rows, toMonitorRow(records[i]))
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := monitorTemplate.Execute(w, data); err != nil {
		log.Printf("monitor render error: %v", err)
	}
}
