package tradebook

import (
	"encoding/json"
	"testing"
)

func TestJsonObjectWriter(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		var w jsonObjectWriter
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "{}"; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("simple object", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("a", 1)
		w.Append("b", "hello")
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"a":1,"b":"hello"}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("optional fields", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("a", 0) // assess that a zero value is actually added.
		w.Optional("b", "")
		w.Optional("c", 0)
		w.Optional("d", "hello")
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"a":0,"d":"hello"}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("marshal error", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("a", make(chan int))
		w.Append("b", 2)
		if _, err := w.MarshalJSON(); err == nil {
			t.Errorf("expected an error for an unmarshallable value")
		}
	})
}

func TestMoneyAndIssueJSON(t *testing.T) {
	got, err := json.Marshal(USD(-12.3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := `{"currency":"USD","amount":-12.30}`; string(got) != want {
		t.Errorf("Money JSON = %s, want %s", got, want)
	}

	got, err = json.Marshal(Issue{Index: 3, Field: "$.pnl", Message: "bad"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := `{"index":3,"field":"$.pnl","message":"bad"}`; string(got) != want {
		t.Errorf("Issue JSON = %s, want %s", got, want)
	}
}
