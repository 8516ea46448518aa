package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/riskibarqy/fantasy-draft/internal/domain/draftlog"
	"github.com/riskibarqy/fantasy-draft/internal/domain/query"
	"github.com/riskibarqy/fantasy-draft/internal/domain/roster"
	"github.com/riskibarqy/fantasy-draft/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-draft/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const newsPreviewCount = 3

func render(fn func(w io.Writer)) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	fn(buf)
	return buf.String()
}

func renderList(snap usecase.BoardSnapshot) string {
	return render(func(w io.Writer) {
		params := snap.Params
		fmt.Fprintf(w, "Page %d/%d | format %s | sort %s %s | position %s | team %s | search %s\n",
			params.Page,
			max(snap.TotalPages, 1),
			params.ScoringFormat,
			params.Sort.Key,
			params.Sort.Arrow(params.Sort.Key),
			orAll(string(params.PositionFilter)),
			orAll(params.TeamFilter),
			quoteOrDash(params.SearchTerm),
		)

		switch snap.ListStatus {
		case usecase.ListLoading:
			fmt.Fprintln(w, "Loading players...")
			return
		case usecase.ListErrored:
			fmt.Fprintln(w, snap.ListError)
		}

		if len(snap.Rows) == 0 {
			if snap.ListStatus != usecase.ListErrored {
				fmt.Fprintln(w, "No players match the current filters.")
			}
		} else {
			writePlayerTable(w, snap)
		}

		var nav []string
		if snap.HasPrevPage() {
			nav = append(nav, "< prev")
		}
		if snap.HasNextPage() {
			nav = append(nav, "next >")
		}
		if len(nav) > 0 {
			fmt.Fprintln(w, strings.Join(nav, "  "))
		}
	})
}

func writePlayerTable(w io.Writer, snap usecase.BoardSnapshot) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	arrow := func(key query.SortKey) string {
		return snap.SortArrows[key]
	}
	fmt.Fprintf(tw, "#\tID\tName%s\tPos%s\tTeam%s\tADP%s\tPts%s\tProj%s\n",
		arrow(query.SortByName),
		arrow(query.SortByPosition),
		arrow(query.SortByTeam),
		arrow(query.SortByADP),
		arrow(query.SortByStats),
		arrow(query.SortByProjections),
	)
	for i, row := range snap.Rows {
		p := row.Player
		adp := "-"
		if p.AverageDraftPosition > 0 {
			adp = fmt.Sprintf("%.1f", p.AverageDraftPosition)
		}
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%s\t%.1f\t%.1f\n",
			i+1, p.ID, p.Name, p.Position, p.Team, adp, row.Points, row.Projected)
	}
	_ = tw.Flush()
}

func renderRoster(snap usecase.BoardSnapshot) string {
	return render(func(w io.Writer) {
		fmt.Fprintf(w, "Roster (%d drafted)\n", len(snap.Team))
		for _, slot := range roster.SlotOrder {
			group := snap.Roster.Group(slot)
			label := string(slot)
			if group.Capacity != roster.Unlimited {
				label = fmt.Sprintf("%s %d/%d", slot, len(group.Players), group.Capacity)
			}
			if group.Empty() {
				fmt.Fprintf(w, "  %-9s Empty\n", label)
				continue
			}
			names := make([]string, len(group.Players))
			for i, p := range group.Players {
				names[i] = fmt.Sprintf("%s (%s, %s)", p.Name, p.Position, p.Team)
			}
			fmt.Fprintf(w, "  %-9s %s\n", label, strings.Join(names, "; "))
		}
	})
}

func renderDetail(snap usecase.BoardSnapshot) string {
	return render(func(w io.Writer) {
		view := snap.Detail
		if view.Selected == nil {
			fmt.Fprintln(w, "No player selected.")
			return
		}

		p := view.Selected
		fmt.Fprintf(w, "%s (%s, %s)\n", p.Name, p.Position, p.Team)
		switch view.Status {
		case usecase.DetailLoading:
			fmt.Fprintln(w, "Loading player details...")
			return
		case usecase.DetailFailed:
			fmt.Fprintln(w, "Player details are unavailable.")
		}

		format := snap.Params.ScoringFormat
		fmt.Fprintf(w, "Stats: %.1f pts (%s)\n", scoring.Score(view.Detail.Stats, format), format)
		fmt.Fprintf(w, "Projection: %.1f pts\n", scoring.Score(view.Detail.Projections, format))

		news := view.Detail.RecentNews(newsPreviewCount)
		if len(news) == 0 {
			fmt.Fprintln(w, "No recent news.")
			return
		}
		fmt.Fprintln(w, "News:")
		for _, item := range news {
			fmt.Fprintf(w, "  - %s (%s)\n", item.Title, item.Updated)
			if content := strings.TrimSpace(item.Content); content != "" {
				fmt.Fprintf(w, "    %s\n", content)
			}
		}
	})
}

func renderTeams(snap usecase.BoardSnapshot) string {
	if len(snap.TeamOptions) == 0 {
		return "No teams on this page.\n"
	}
	return "Teams: " + strings.Join(snap.TeamOptions, ", ") + "\n"
}

func renderHistory(picks []draftlog.Pick) string {
	return render(func(w io.Writer) {
		if len(picks) == 0 {
			fmt.Fprintln(w, "No picks recorded.")
			return
		}
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "Pick\tPlayer\tPos\tTeam\tDrafted")
		for _, pick := range picks {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
				pick.PickNumber, pick.PlayerName, pick.Position, pick.Team, pick.DraftedAt.UTC().Format("2006-01-02 15:04:05"))
		}
		_ = tw.Flush()
	})
}

func orAll(value string) string {
	if value == "" {
		return "all"
	}
	return value
}

func quoteOrDash(value string) string {
	if value == "" {
		return "-"
	}
	return fmt.Sprintf("%q", value)
}
