package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("session_id", "pick_number").
		From("draft_picks").
		Where(Eq("session_id", "s1"), IsNull("deleted_at")).
		OrderBy("pick_number").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT session_id, pick_number FROM draft_picks WHERE session_id = $1 AND deleted_at IS NULL ORDER BY pick_number LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "s1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("player_news").
		Columns("news_id", "title").
		Values(int64(1), "a").
		Values(int64(2), "b").
		Suffix("ON CONFLICT (news_id) DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO player_news (news_id, title) VALUES ($1, $2), ($3, $4) ON CONFLICT (news_id) DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[3] != "b" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilderRejectsRaggedRows(t *testing.T) {
	_, _, err := InsertInto("t").Columns("a", "b").Values(1).ToSQL()
	if err == nil {
		t.Fatalf("expected error for short row")
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		SessionID  string `db:"session_id"`
		PickNumber int    `db:"pick_number,omitempty"`
		Ignored    string `db:"-"`
		internal   string
	}

	query, args, err := InsertModel("draft_picks", row{SessionID: "s1", PickNumber: 3, internal: "x"}, "")
	if err != nil {
		t.Fatalf("build insert model: %v", err)
	}
	wantQuery := "INSERT INTO draft_picks (session_id, pick_number) VALUES ($1, $2)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "s1" || args[1] != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := InsertModel("t", nil, ""); err == nil {
		t.Fatalf("expected error for nil model")
	}
}

func TestColumns(t *testing.T) {
	type row struct {
		NewsID  int64  `db:"news_id"`
		Title   string `db:"title,omitempty"`
		Skipped string
		hidden  string `db:"hidden"`
	}

	got, err := Columns(&row{})
	if err != nil {
		t.Fatalf("columns: %v", err)
	}
	if len(got) != 2 || got[0] != "news_id" || got[1] != "title" {
		t.Fatalf("got=%v want=[news_id title]", got)
	}

	if _, err := Columns(struct{ A int }{}); err == nil {
		t.Fatalf("expected error for model without db tags")
	}
	if _, err := Columns(42); err == nil {
		t.Fatalf("expected error for non-struct model")
	}
}

func TestSelectBuilderRequiresTable(t *testing.T) {
	if _, _, err := Select("a").ToSQL(); err == nil {
		t.Fatalf("expected error without table")
	}
}
