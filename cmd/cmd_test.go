package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/persona/internal/bank"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("PERSONA_LANG", "en")

	// Flags persist on the package-level commands between runs.
	t.Cleanup(func() {
		resetFlags(rootCmd)
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "persona")
	assert.Contains(t, out, bank.Version())
}

func TestQuestionsList_All(t *testing.T) {
	out, err := execute(t, "questions", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "EI-0")
	assert.Contains(t, out, "JP-0")
	assert.Contains(t, out, "120 questions")
}

func TestQuestionsList_Dimension(t *testing.T) {
	out, err := execute(t, "questions", "list", "--dimension", "sn")
	require.NoError(t, err)
	assert.Contains(t, out, "SN-0")
	assert.NotContains(t, out, "EI-0")
	assert.Contains(t, out, "30 questions")
}

func TestQuestionsList_UnknownDimension(t *testing.T) {
	_, err := execute(t, "questions", "list", "--dimension", "XY")
	assert.ErrorContains(t, err, "unknown dimension")
}

func TestArchetypeCmd(t *testing.T) {
	out, err := execute(t, "archetype", "intj")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "INTJ"))
	assert.Contains(t, out, "#")
}

func TestArchetypeCmd_ListsAll(t *testing.T) {
	out, err := execute(t, "archetype")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 16)
}

func TestArchetypeCmd_Unknown(t *testing.T) {
	_, err := execute(t, "archetype", "ABCD")
	assert.ErrorContains(t, err, "unknown archetype code")
}

func TestResolveConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("PERSONA_LANG", "en")
	t.Setenv("PERSONA_SEED", "7")
	t.Cleanup(func() { resetFlags(rootCmd) })

	require.NoError(t, rootCmd.ParseFlags([]string{"--lang", "zh"}))
	cfg, err := resolveConfig(rootCmd)
	require.NoError(t, err)
	assert.Equal(t, "zh", cfg.Lang)
	assert.Equal(t, uint64(7), cfg.Seed)
}

func TestResolveConfig_RejectsUnknownLanguage(t *testing.T) {
	t.Cleanup(func() { resetFlags(rootCmd) })
	require.NoError(t, rootCmd.ParseFlags([]string{"--lang", "klingon"}))
	_, err := resolveConfig(rootCmd)
	assert.ErrorContains(t, err, "unsupported language")
}

func TestResolveConfig_RejectsUnknownEnvLanguage(t *testing.T) {
	t.Setenv("PERSONA_LANG", "klingon")
	t.Cleanup(func() { resetFlags(rootCmd) })
	require.NoError(t, rootCmd.ParseFlags(nil))
	_, err := resolveConfig(rootCmd)
	assert.ErrorContains(t, err, "unsupported language")
}

func TestResolveConfig_FlagRescuesBadEnvLanguage(t *testing.T) {
	t.Setenv("PERSONA_LANG", "klingon")
	t.Cleanup(func() { resetFlags(rootCmd) })
	require.NoError(t, rootCmd.ParseFlags([]string{"--lang", "en"}))
	cfg, err := resolveConfig(rootCmd)
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Lang)
}

func TestSessionFactory_SeededRunsRepeat(t *testing.T) {
	factory := sessionFactory(42, nil)
	a, err := factory()
	require.NoError(t, err)
	b, err := factory()
	require.NoError(t, err)
	a.Start()
	b.Start()
	qa, _ := a.Active()
	qb, _ := b.Active()
	assert.Equal(t, qa.ID, qb.ID)
}
