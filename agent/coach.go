package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/etnz/tradebook"
	"github.com/etnz/tradebook/docs"
	"github.com/etnz/tradebook/renderer"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	model := DefaultModel
	if len(experts) > 0 && experts[0].ModelName != "" {
		model = experts[0].ModelName
	}
	return &Expert{
		Name:      "Coach",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a trading coach. The user is a day trader who journals every trade, and you help
			them understand their results and keep their discipline.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They keep context of your previous questions.

			Always ground your answers in the figures of the journal: ask the Analyst first.
			Be direct about losing streaks and overtrading, and relate the month's return to the monthly goal.
			Answer in markdown.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewMarketExpert creates an expert grounded on Google Search, for news about the instruments traded.
func NewMarketExpert(model string) *Expert {
	return &Expert{
		Name: "Market",
		Description: `This is a market expert, aware of futures, forex and stock markets and of the latest news.
		Ask the Market expert whenever you need recent or grounding information about an instrument.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a market expert. You leverage Google Search to ground your assertions,
			and relate the latest news to the instruments the user trades.
			`}}},
		},
	}
}

// NewAnalyst creates the expert in charge of the user's journal. It reads it
// through the analytics functions only.
func NewAnalyst(model string, j *tradebook.Journal) *Expert {
	lib := JournalFunctions(j)
	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. It reads the user's trading journal and computes
		statistics, performance against the capital, streaks, the equity curve and monthly calendars.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are the analyst of the user's trading journal.
			Use the Tools to get the figures, never guess them. Percentages are relative to the
			capital deposited, and a month without trades has no return.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// JournalFunctions returns the functions reading j.
func JournalFunctions(j *tradebook.Journal) []Function {
	return []Function{
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "PerformanceSnapshot",
				Description: "PerformanceSnapshot returns every analytics output of the journal as JSON: statistics, equity curve, streaks, performance windows and data-quality issues.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"year": {
							Type:        genai.TypeInteger,
							Description: "Restrict the analysis to this year. All years by default.",
						},
					},
				},
				Response: &genai.Schema{Type: genai.TypeString, Description: "The snapshot as JSON, null when the journal is empty."},
			},
			Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
				year, err := parseYear(args)
				if err != nil {
					return failure(id, "PerformanceSnapshot", err)
				}
				data, err := json.Marshal(tradebook.NewSnapshot(j.Year(year)))
				if err != nil {
					return failure(id, "PerformanceSnapshot", err)
				}
				return success(id, "PerformanceSnapshot", string(data))
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Report",
				Description: "Report returns the full trading report of the journal, as markdown tables.",
				Response:    &genai.Schema{Type: genai.TypeString, Description: "A markdown report."},
			},
			Func: func(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
				cal := tradebook.NewCalendarMonth(j, j.Today())
				return success(id, "Report", renderer.RenderReport(&renderer.Report{Snapshot: tradebook.NewSnapshot(j), Calendar: &cal}))
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Calendar",
				Description: "Calendar returns the daily results of one month as a markdown grid.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"date": {
							Type: genai.TypeString,
							Description: `Any day of the month to show. Today is the default.
					Otherwise it uses a flexible date format based on YYYY-MM-DD:

					` + must(docs.GetTopic("dates")),
						},
					},
				},
				Response: &genai.Schema{Type: genai.TypeString, Description: "A markdown calendar."},
			},
			Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
				date, err := parseDate(args, j.Today())
				if err != nil {
					return failure(id, "Calendar", err)
				}
				cal := tradebook.NewCalendarMonth(j, date)
				return success(id, "Calendar", renderer.RenderCalendar(&cal))
			},
		},
	}
}

func parseDate(args map[string]any, today tradebook.Date) (tradebook.Date, error) {
	idate, hasDate := args["date"]
	if !hasDate {
		return today, nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return today, fmt.Errorf("argument 'date' is not a string as expected but %T", idate)
	}
	date, err := tradebook.ParseDate(sdate)
	if err != nil {
		return today, fmt.Errorf("argument 'date' must be a valid date got %q. Below is the doc about the format date\n\n%s ", sdate, must(docs.GetTopic("dates")))
	}
	return date, nil
}

// parseYear reads the optional "year" argument. Models send numbers as float64, sometimes as text.
func parseYear(args map[string]any) (int, error) {
	switch v := args["year"].(type) {
	case nil:
		return tradebook.AllYears, nil
	case float64:
		return int(v), nil
	case int:
		return v, nil
	case string:
		y, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("argument 'year' must be an integer got %q", v)
		}
		return y, nil
	default:
		return 0, fmt.Errorf("argument 'year' is not an integer as expected but %T", v)
	}
}
