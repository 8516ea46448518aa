package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/fantasy-draft/internal/domain/query"
	"github.com/riskibarqy/fantasy-draft/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-draft/internal/usecase"
)

const helpText = `Commands:
  search <term>          filter by name (empty clears)
  pos <QB|RB|WR|TE|K|DEF|FLEX|SUPERFLEX|all>
  team <ABBR|all>        filter by NFL team
  sort <adp|name|position|team|stats|projections>
  format <standard|ppr|half_ppr>
  page <n> | next | prev
  list                   show the current page
  show <id|name>         open player details
  close                  close player details
  draft <id|name>        add a player to your team
  roster                 show your roster
  teams                  list teams on the current page
  history                show recorded picks
  retry                  reload the current page
  help | quit
`

// execute runs one command line. The bool result asks the caller to stop.
func (c *Console) execute(ctx context.Context, line string) (bool, error) {
	name, args, _ := strings.Cut(line, " ")
	name = strings.ToLower(name)
	args = strings.TrimSpace(args)
	c.logger.DebugContext(ctx, "command", "name", name, "args", args)

	switch name {
	case "quit", "exit":
		return true, nil
	case "help", "?":
		c.write(helpText)
	case "search":
		c.board.SetSearchTerm(ctx, args)
		c.showList(ctx)
	case "pos", "position":
		return false, c.setPosition(ctx, args)
	case "team":
		team := strings.ToUpper(args)
		if strings.EqualFold(team, "all") {
			team = ""
		}
		c.board.SetTeamFilter(ctx, team)
		c.showList(ctx)
	case "sort":
		key, ok := query.ParseSortKey(args)
		if !ok {
			return false, fmt.Errorf("%w: unknown sort key %q", usecase.ErrInvalidInput, args)
		}
		if _, err := c.board.RequestSort(ctx, key); err != nil {
			return false, err
		}
		c.showList(ctx)
	case "format":
		if _, err := c.board.SetScoringFormat(ctx, scoring.Format(strings.ToLower(args))); err != nil {
			return false, err
		}
		c.showList(ctx)
	case "page":
		page, err := strconv.Atoi(args)
		if err != nil {
			return false, fmt.Errorf("%w: page must be a number", usecase.ErrInvalidInput)
		}
		if _, err := c.board.SetPage(ctx, page); err != nil {
			return false, err
		}
		c.showList(ctx)
	case "next":
		if _, err := c.board.NextPage(ctx); err != nil {
			return false, err
		}
		c.showList(ctx)
	case "prev":
		if _, err := c.board.PrevPage(ctx); err != nil {
			return false, err
		}
		c.showList(ctx)
	case "list", "ls":
		c.showList(ctx)
	case "retry", "reload":
		c.board.Load(ctx)
		c.showList(ctx)
	case "show":
		return false, c.show(ctx, args)
	case "close":
		c.board.ClosePlayer()
		c.write("Player details closed.\n")
	case "draft":
		return false, c.draft(ctx, args)
	case "roster":
		c.write(renderRoster(c.board.Snapshot()))
	case "teams":
		c.write(renderTeams(c.board.Snapshot()))
	case "history":
		picks, err := c.board.History(ctx)
		if err != nil {
			return false, err
		}
		c.write(renderHistory(picks))
	default:
		return false, fmt.Errorf("%w: unknown command %q, type help", usecase.ErrInvalidInput, name)
	}
	return false, nil
}

func (c *Console) showList(ctx context.Context) {
	c.write(renderList(c.waitSettled(ctx)))
}

func (c *Console) setPosition(ctx context.Context, arg string) error {
	filter := query.PositionFilter(strings.ToUpper(arg))
	if strings.EqualFold(arg, "all") {
		filter = query.PositionAll
	}
	if _, err := c.board.SetPositionFilter(ctx, filter); err != nil {
		return err
	}
	c.showList(ctx)
	return nil
}

func (c *Console) show(ctx context.Context, arg string) error {
	target, err := resolvePlayer(c.board.Snapshot().Rows, arg)
	if err != nil {
		return err
	}
	if err := c.board.SelectPlayer(ctx, target.ID); err != nil {
		return err
	}
	c.write(renderDetail(c.waitSettled(ctx)))
	return nil
}

func (c *Console) draft(ctx context.Context, arg string) error {
	target, err := resolvePlayer(c.board.Snapshot().Rows, arg)
	if err != nil {
		return err
	}
	picked, err := c.board.Draft(ctx, target.ID)
	if err != nil {
		return err
	}

	snap := c.board.Snapshot()
	c.write(fmt.Sprintf("Drafted %s (%s, %s) with pick %d.\n", picked.Name, picked.Position, picked.Team, len(snap.Team)))
	c.write(renderRoster(snap))
	return nil
}
