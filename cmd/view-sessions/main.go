// Command view-sessions prints recorded assessment results from the
// service database.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"ptpal/internal/store"
)

func main() {
	dbPath := flag.String("db", "", "Path to SQLite database")
	limit := flag.Int("limit", 10, "Number of recent results to show")
	flag.Parse()

	path := *dbPath
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("Failed to get home directory: %v", err)
		}
		path = filepath.Join(homeDir, ".ptpal", "ptpal.db")
	}

	st, err := store.New(path)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer st.Close()

	if err := printReport(st, *limit); err != nil {
		log.Fatalf("Failed to build report: %v", err)
	}
}

func printReport(st *store.Store, limit int) error {
	results, err := st.Results().Recent(limit)
	if err != nil {
		return err
	}

	fmt.Println("RECENT RESULTS")
	fmt.Println(strings.Repeat("=", 80))

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
	} else {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TIME\tEXERCISE\tSCORE\tPASS\tFIRST REASON")
		for _, rec := range results {
			pass := "no"
			if rec.Pass {
				pass = "yes"
			}
			fmt.Fprintf(w, "%s\t%s\t%d/5\t%s\t%s\n",
				rec.CreatedAt.Local().Format("2006-01-02 15:04"),
				rec.Exercise, rec.Score, pass, firstReason(rec.Reasons))
		}
		w.Flush()
	}

	sessions, err := st.Sessions().Count()
	if err != nil {
		return err
	}
	records, err := st.Results().Count()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("SESSION SUMMARY")
	fmt.Println(strings.Repeat("=", 80))
	fmt.Printf("Total sessions: %d\n", sessions)
	fmt.Printf("Total results:  %d\n", records)

	summaries, err := st.Results().RecentSummaries(3)
	if err != nil {
		return err
	}
	if len(summaries) > 0 {
		fmt.Println("Recent sessions:")
		for _, sum := range summaries {
			fmt.Printf("  %s: %d records, avg score %.1f, %d passed\n",
				sum.SessionID, sum.Records, sum.AvgScore, sum.Passes)
		}
	}

	return nil
}

// firstReason pulls the leading cue out of the stored reasons JSON.
func firstReason(raw string) string {
	var reasons []string
	if err := json.Unmarshal([]byte(raw), &reasons); err != nil || len(reasons) == 0 {
		return ""
	}
	return reasons[0]
}
