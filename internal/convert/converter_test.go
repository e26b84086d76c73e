package convert

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chemtrace/prose2actions/internal/actions"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []string{
		"STIR for 10 minutes at 5 °C.",
		"STIR for overnight at room temperature under nitrogen.",
		"ADD water (5 ml).",
		"ADD NaOH (2 g, 50 mmol) dropwise at 0 °C under argon over 30 minutes.",
		"FILTER keep filtrate.",
		"FILTER keep precipitate.",
		"FILTER.",
		"DRYSOLUTION over sodium sulfate.",
		"DRYSOLUTION.",
		"DRYSOLID for 2 h at 50 °C under vacuum.",
		"CONCENTRATE.",
		"NOACTION.",
		"PURIFY.",
		"PHASESEPARATION.",
		"FOLLOWOTHERPROCEDURE.",
		"OTHERLANGUAGE.",
		"WAIT for 10 minutes.",
		"WAIT for 1 h at 25 °C.",
		"SETTEMPERATURE 5 °C.",
		"COLLECTLAYER aqueous.",
		"COLLECTLAYER organic.",
		"EXTRACT with EtOAc (100 ml).",
		"EXTRACT with EtOAc (100 ml) 3 x.",
		"WASH with brine 2 x.",
		"TRITURATE with cold MeOH.",
		"RECRYSTALLIZE from ethanol.",
		"QUENCH with water dropwise at 0 °C.",
		"PH with HCl to pH 7 dropwise at 0 °C.",
		"DEGAS with nitrogen for 10 minutes.",
		"REFLUX for 2 h under N2 with Dean-Stark apparatus.",
		"MICROWAVE for 30 minutes at 120 °C.",
		"SONICATE for 5 minutes.",
		"YIELD title compound (85%).",
		"MAKESOLUTION with water (5 ml) and THF (10 ml).",
		"MAKESOLUTION with A and B and C.",
		"PARTITION with water (50 ml) and DCM (50 ml).",
		"INVALIDACTION something went wrong.",
		"ADD water (5 ml); STIR for 10 minutes; FILTER keep filtrate; YIELD product.",
	}

	conv := NewConverter()
	for _, s := range cases {
		t.Run(s, func(t *testing.T) {
			seq, err := conv.StringToActions(s)
			require.NoError(t, err)
			serialized, err := conv.ActionsToString(seq)
			require.NoError(t, err)
			assert.Equal(t, s, serialized)

			reparsed, err := conv.StringToActions(serialized)
			require.NoError(t, err)
			assert.True(t, actions.SequencesEqual(seq, reparsed))
		})
	}
}

func TestStringToActions_Parameters(t *testing.T) {
	t.Parallel()

	conv := NewConverter()

	seq, err := conv.StringToActions("ADD NaOH (2 g) dropwise at 0 °C; STIR for 1 h.")
	require.NoError(t, err)
	require.Len(t, seq, 2)

	add := seq[0]
	assert.Equal(t, actions.Add, add.Kind)
	material, ok := add.Get(actions.TagMaterial)
	require.True(t, ok)
	assert.Equal(t, "NaOH (2 g)", material)
	assert.True(t, add.Has(actions.TagDropwise))
	temperature, _ := add.Get(actions.TagTemperature)
	assert.Equal(t, "0 °C", temperature)

	stir := seq[1]
	assert.Equal(t, actions.Stir, stir.Kind)
	duration, _ := stir.Get(actions.TagDuration)
	assert.Equal(t, "1 h", duration)
}

func TestStringToActions_MultiMaterial(t *testing.T) {
	t.Parallel()

	conv := NewConverter()

	seq, err := conv.StringToActions("MAKESOLUTION with water (5 ml) and THF.")
	require.NoError(t, err)
	require.Len(t, seq, 1)
	assert.Equal(t, []string{"water (5 ml)", "THF"}, seq[0].Values(actions.TagMaterial))

	_, err = conv.StringToActions("MAKESOLUTION with water.")
	var malformed *MalformedActionError
	require.ErrorAs(t, err, &malformed)

	_, err = conv.StringToActions("PARTITION with water and DCM and hexane.")
	require.ErrorAs(t, err, &malformed)
}

func TestStringToActions_Errors(t *testing.T) {
	t.Parallel()

	conv := NewConverter()

	t.Run("unknown action", func(t *testing.T) {
		_, err := conv.StringToActions("DANCE for 10 minutes.")
		var unknown *UnknownActionError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "DANCE", unknown.Token)
	})

	t.Run("leftover text", func(t *testing.T) {
		_, err := conv.StringToActions("CONCENTRATE quickly.")
		var malformed *MalformedActionError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, actions.Concentrate, malformed.Kind)
	})

	t.Run("missing required parameter", func(t *testing.T) {
		_, err := conv.StringToActions("WAIT.")
		var malformed *MalformedActionError
		require.ErrorAs(t, err, &malformed)
	})

	t.Run("missing leading compound", func(t *testing.T) {
		_, err := conv.StringToActions("EXTRACT.")
		var malformed *MalformedActionError
		require.ErrorAs(t, err, &malformed)
	})

	t.Run("invalid phase", func(t *testing.T) {
		_, err := conv.StringToActions("FILTER keep everything.")
		var malformed *MalformedActionError
		require.ErrorAs(t, err, &malformed)
	})

	t.Run("invalid layer", func(t *testing.T) {
		_, err := conv.StringToActions("COLLECTLAYER middle.")
		require.Error(t, err)
	})
}

func TestStringToActionsLenient(t *testing.T) {
	t.Parallel()

	conv := NewConverter()

	seq := conv.StringToActionsLenient("STIR for 1 h; DANCE wildly; FILTER keep filtrate.")
	require.Len(t, seq, 3)
	assert.Equal(t, actions.Stir, seq[0].Kind)
	assert.Equal(t, actions.InvalidAction, seq[1].Kind)
	assert.Equal(t, actions.Filter, seq[2].Kind)

	payload, _ := seq[1].Get(actions.TagError)
	assert.Contains(t, payload, "DANCE")
}

func TestSeparatorEscaping(t *testing.T) {
	t.Parallel()

	conv := NewConverter()

	// a compound name containing the action separator must not break the
	// top-level split
	a := actions.New(actions.Add, actions.Param(actions.TagMaterial, "compound A; B mixture"))
	serialized, err := conv.ActionsToString([]actions.Action{a})
	require.NoError(t, err)

	seq, err := conv.StringToActions(serialized)
	require.NoError(t, err)
	require.Len(t, seq, 1)
	material, _ := seq[0].Get(actions.TagMaterial)
	assert.Equal(t, "compound A; B mixture", material)
}

func TestActionsToString_Errors(t *testing.T) {
	t.Parallel()

	conv := NewConverter()

	t.Run("duplicate parameter", func(t *testing.T) {
		a := actions.New(actions.Stir,
			actions.Param(actions.TagTemperature, "5 °C"),
			actions.Param(actions.TagTemperature, "10 °C"))
		_, err := conv.ActionsToString([]actions.Action{a})
		var serializeErr *SerializeError
		require.ErrorAs(t, err, &serializeErr)
	})

	t.Run("unrecognized parameter", func(t *testing.T) {
		a := actions.New(actions.Concentrate, actions.Param(actions.TagDuration, "1 h"))
		_, err := conv.ActionsToString([]actions.Action{a})
		require.Error(t, err)
	})

	t.Run("missing leading compound", func(t *testing.T) {
		a := actions.New(actions.Yield)
		_, err := conv.ActionsToString([]actions.Action{a})
		require.Error(t, err)
	})
}

func TestEndMarkHandling(t *testing.T) {
	t.Parallel()

	conv := NewConverter()

	withMark, err := conv.StringToActions("STIR for 1 h.")
	require.NoError(t, err)
	withoutMark, err := conv.StringToActions("STIR for 1 h")
	require.NoError(t, err)
	assert.True(t, actions.SequencesEqual(withMark, withoutMark))

	empty, err := conv.StringToActions("")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestStringToActions_EmptySequence(t *testing.T) {
	t.Parallel()

	conv := NewConverter()
	seq, err := conv.StringToActions(".")
	require.NoError(t, err)
	assert.Empty(t, seq)

	serialized, err := conv.ActionsToString(nil)
	require.NoError(t, err)
	assert.Equal(t, ".", serialized)
}

func TestSupported(t *testing.T) {
	t.Parallel()

	conv := NewConverter()
	assert.True(t, conv.Supported("STIR"))
	assert.True(t, conv.Supported("MAKESOLUTION"))
	assert.False(t, conv.Supported("Stir"))
	assert.False(t, conv.Supported("DANCE"))
}

func TestErrorsUnwrap(t *testing.T) {
	t.Parallel()

	conv := NewConverter()
	_, err := conv.StringToActions("DANCE.")
	require.Error(t, err)
	assert.False(t, errors.As(err, new(*MalformedActionError)))
}
