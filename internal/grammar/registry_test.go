package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yurvon-screamo/origa-sub001/internal/japanese"
	"github.com/yurvon-screamo/origa-sub001/internal/valueobject"
)

func TestRulesLoad(t *testing.T) {
	rules := Rules()
	assert.NotEmpty(t, rules)

	_, ok := RuleByID("01D39ZY06FGSCTVN4T2V9PKHFA")
	assert.True(t, ok, "mashou rule should be present")
}

func TestMashouFormat(t *testing.T) {
	rule, ok := RuleByID("01D39ZY06FGSCTVN4T2V9PKHFA")
	require.True(t, ok)
	assert.Equal(t, valueobject.N5, rule.Level)

	out, err := rule.Format("行く", japanese.Verb)
	require.NoError(t, err)
	assert.Equal(t, "行きましょう", out)

	_, err = rule.Format("学生", japanese.Noun)
	assert.Error(t, err)
}

func TestMadaTeInaiPrefixAndTemplate(t *testing.T) {
	rule, ok := RuleByID("CRZSF906VEBX3F7X8XMWVWAYWG")
	require.True(t, ok)

	out, err := rule.Format("食べる", japanese.Verb)
	require.NoError(t, err)
	assert.Equal(t, "まだ食べていません", out)
}

func TestNdaDispatch(t *testing.T) {
	rule, ok := RuleByID("35VH20N8GAWV07492Q9V82KQ2P")
	require.True(t, ok)

	out, err := rule.Format("行く", japanese.Verb)
	require.NoError(t, err)
	assert.Equal(t, "行くんだ", out)

	out, err = rule.Format("学生", japanese.Noun)
	require.NoError(t, err)
	assert.Equal(t, "学生なんだ", out)

	_, err = rule.Format("x", japanese.Particle)
	assert.Error(t, err)
}

func TestAdjectiveNaruDispatch(t *testing.T) {
	rule, ok := RuleByID("DF6PT9FABT1BNTFHA6R2YECXPK")
	require.True(t, ok)

	out, err := rule.Format("暖か", japanese.IAdjective)
	require.NoError(t, err)
	assert.Equal(t, "暖かくなる", out)

	out, err = rule.Format("静か", japanese.NaAdjective)
	require.NoError(t, err)
	assert.Equal(t, "静かになる", out)
}

func TestAdjectivePastDispatch(t *testing.T) {
	rule, ok := RuleByID("EE1CSNH4HPSN17GBG26VPMV7RC")
	require.True(t, ok)

	out, err := rule.Format("高", japanese.IAdjective)
	require.NoError(t, err)
	assert.Equal(t, "高かった", out)

	out, err = rule.Format("静か", japanese.NaAdjective)
	require.NoError(t, err)
	assert.Equal(t, "静かでした", out)
}

func TestRulesForLevelAndPartOfSpeech(t *testing.T) {
	n5 := RulesForLevel(valueobject.N5)
	assert.NotEmpty(t, n5)
	for _, r := range n5 {
		assert.Equal(t, valueobject.N5, r.Level)
	}

	verbRules := RulesForPartOfSpeech(japanese.Verb)
	assert.NotEmpty(t, verbRules)
	for _, r := range verbRules {
		assert.True(t, r.AcceptsPartOfSpeech(japanese.Verb))
	}
}
