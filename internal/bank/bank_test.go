package bank

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/persona/internal/i18n"
)

func TestValidate_EmbeddedBankPasses(t *testing.T) {
	require.NoError(t, Validate())
}

func TestEmbeddedBank_Shape(t *testing.T) {
	assert.Equal(t, "v1.0.0", Version())
	assert.Len(t, All(), 120)

	for _, dim := range AllDimensions() {
		qs := Questions(dim)
		require.Len(t, qs, 30, "dimension %s", dim)

		first, second := dim.Letters()
		for i, q := range qs {
			assert.Equal(t, fmt.Sprintf("%s-%d", dim, i), q.ID)
			assert.Equal(t, dim, q.Dimension)
			assert.Equal(t, first, q.A.Value)
			assert.Equal(t, second, q.B.Value)
		}
	}
}

func TestEmbeddedBank_FirstQuestion(t *testing.T) {
	q, err := Get("EI-0")
	require.NoError(t, err)
	assert.Equal(t, "At a large social gathering, you tend to...", q.Text.In(i18n.English))
	assert.Equal(t, "在大型社交聚会上，你倾向于...", q.Text.In(i18n.Chinese))
	assert.Equal(t, E, q.A.Value)
	assert.Equal(t, I, q.B.Value)
}

func TestGet_Unknown(t *testing.T) {
	_, err := Get("XX-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "XX-1")
}

func TestQuestions_ReturnsCopy(t *testing.T) {
	qs := Questions(EI)
	qs[0].ID = "mutated"

	again := Questions(EI)
	assert.Equal(t, "EI-0", again[0].ID)
}

func TestQuestions_Deterministic(t *testing.T) {
	assert.Equal(t, Questions(TF), Questions(TF))
}

func TestQuestions_UnknownDimension(t *testing.T) {
	assert.Empty(t, Questions(Dimension("XY")))
}

// sampleDoc builds a bank document with n questions per dimension.
func sampleDoc(t *testing.T, version string, n int) []byte {
	t.Helper()
	doc := document{Version: version}
	for _, dim := range AllDimensions() {
		dd := dimensionDoc{ID: string(dim)}
		for i := range n {
			dd.Questions = append(dd.Questions, questionDoc{
				Text: i18n.Text{EN: fmt.Sprintf("q%d", i), ZH: fmt.Sprintf("问%d", i)},
				A:    i18n.Text{EN: "a", ZH: "甲"},
				B:    i18n.Text{EN: "b", ZH: "乙"},
			})
		}
		doc.Dimensions = append(doc.Dimensions, dd)
	}
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	return raw
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		raw     func(t *testing.T) []byte
		wantErr string
	}{
		{
			name: "valid",
			raw:  func(t *testing.T) []byte { return sampleDoc(t, "v1.2.0", 6) },
		},
		{
			name:    "not json",
			raw:     func(t *testing.T) []byte { return []byte("{") },
			wantErr: "invalid JSON",
		},
		{
			name:    "future major version",
			raw:     func(t *testing.T) []byte { return sampleDoc(t, "v2.0.0", 6) },
			wantErr: "unsupported bank version",
		},
		{
			name:    "malformed version",
			raw:     func(t *testing.T) []byte { return sampleDoc(t, "1.0", 6) },
			wantErr: "schema validation failed",
		},
		{
			name:    "pool no larger than quota",
			raw:     func(t *testing.T) []byte { return sampleDoc(t, "v1.0.0", QuestionsPerDimension) },
			wantErr: "need more than",
		},
		{
			name: "missing translation",
			raw: func(t *testing.T) []byte {
				return []byte(strings.Replace(string(sampleDoc(t, "v1.0.0", 6)), `"zh":"甲"`, `"zh":""`, 1))
			},
			wantErr: "schema validation failed",
		},
		{
			name: "unknown dimension",
			raw: func(t *testing.T) []byte {
				return []byte(strings.Replace(string(sampleDoc(t, "v1.0.0", 6)), `"id":"JP"`, `"id":"XY"`, 1))
			},
			wantErr: "schema validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bk, err := Load(tt.raw(t))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, bk.All(), 24)
			assert.Len(t, bk.Questions(JP), 6)
		})
	}
}

func TestValidateQuestions_DetectsDuplicateID(t *testing.T) {
	var qs []Question
	for _, dim := range AllDimensions() {
		first, second := dim.Letters()
		for range QuestionsPerDimension + 1 {
			qs = append(qs, Question{
				ID:        "dup",
				Dimension: dim,
				Text:      i18n.Text{EN: "x", ZH: "x"},
				A:         Option{Text: i18n.Text{EN: "a", ZH: "a"}, Value: first},
				B:         Option{Text: i18n.Text{EN: "b", ZH: "b"}, Value: second},
			})
		}
	}
	err := validateQuestions(qs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestValidateQuestions_DetectsSwappedOptions(t *testing.T) {
	qs := Default().All()
	qs[0].A.Value, qs[0].B.Value = qs[0].B.Value, qs[0].A.Value

	err := validateQuestions(qs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"EI-0" options must map to E/I`)
}

func TestValidateQuestions_DetectsEmptyDimension(t *testing.T) {
	var qs []Question
	for _, q := range Default().All() {
		if q.Dimension != SN {
			qs = append(qs, q)
		}
	}
	err := validateQuestions(qs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dimension SN has 0 questions")
}
