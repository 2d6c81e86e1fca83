package terminal

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		line Line
		want string
	}{
		{
			name: "system text",
			line: System("Welcome"),
			want: `{"kind":"system","format":"text","text":"Welcome"}`,
		},
		{
			name: "input text",
			line: Input("  HELP "),
			want: `{"kind":"input","format":"text","text":"  HELP "}`,
		},
		{
			name: "output table",
			line: Output(Table{Rows: []Row{{Key: "Email", Value: "a@b.c"}}, KeySuffix: ":", Separator: " "}),
			want: `{"kind":"output","format":"table","text":"Email: a@b.c","rows":[{"key":"Email","value":"a@b.c"}]}`,
		},
		{
			name: "output blocks",
			line: Output(Blocks{{Title: "Dev", Lines: []string{"Go, SQL"}}}),
			want: `{"kind":"output","format":"blocks","text":"Dev\nGo, SQL","blocks":[{"title":"Dev","lines":["Go, SQL"]}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.line)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestTranscript_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(InitialTranscript())
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "system", decoded[0]["kind"])
	assert.Equal(t, "Welcome to NASHTE_OS v1.0.0", decoded[0]["text"])
}

func TestTable_TextPadsKeys(t *testing.T) {
	table := Table{
		Rows: []Row{
			{Key: "a", Value: "first"},
			{Key: "longer", Value: "second"},
		},
		Separator: " | ",
	}
	assert.Equal(t, "a      | first\nlonger | second", table.Text())
	assert.Equal(t, "", Table{}.Text())
}

func TestBlocks_TextSeparatesWithBlankLine(t *testing.T) {
	blocks := Blocks{
		{Title: "One", Lines: []string{"a", "b"}},
		{Title: "Two"},
	}
	assert.Equal(t, "One\na\nb\n\nTwo", blocks.Text())
}

func TestLine_TextWithNilContent(t *testing.T) {
	assert.Equal(t, "", Line{Kind: LineOutput}.Text())
}

func TestTranscript_CloneOfNil(t *testing.T) {
	var transcript Transcript
	clone := transcript.Clone()
	assert.NotNil(t, clone)
	assert.Empty(t, clone)
}
