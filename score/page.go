package score

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/a-h/templ"
)

// LeaderboardPage renders the ranked results as a standalone HTML page
func LeaderboardPage(records []Record) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, pageHead); err != nil {
			return err
		}
		if len(records) == 0 {
			if _, err := io.WriteString(w, `<tr><td colspan="4">No results yet</td></tr>`); err != nil {
				return err
			}
		}
		for i, r := range records {
			date := time.Unix(r.CreatedAt, 0).UTC().Format("2006-01-02")
			_, err := fmt.Fprintf(w, `<tr><td>%d</td><td>%s</td><td>%d</td><td>%s</td></tr>`,
				i+1, templ.EscapeString(r.Name), r.Score, date)
			if err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, pageTail)
		return err
	})
}

const pageHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>racer796 top results</title>
<style>
body { background: #232331; color: #fff; font-family: monospace; }
table { margin: 2em auto; border-collapse: collapse; }
td, th { padding: 0.3em 1em; text-align: left; }
tr:nth-child(even) { background: #2a2c34; }
</style>
</head>
<body>
<table>
<thead><tr><th>#</th><th>Name</th><th>Coins</th><th>Date</th></tr></thead>
<tbody>
`

const pageTail = `</tbody>
</table>
</body>
</html>
`
