package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategyWeights(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Weights
		wantErr bool
	}{
		{name: "Should default to weighted", input: "", want: WeightedStrategy},
		{name: "Should return weighted", input: "weighted", want: WeightedStrategy},
		{name: "Should return simple", input: "simple", want: SimpleStrategy},
		{name: "Should reject unknown strategy", input: "stable-marriage", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StrategyWeights(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWeights_jitterSpan(t *testing.T) {
	assert.Equal(t, 50.0, WeightedStrategy.jitterSpan())
	assert.Equal(t, 0.5, SimpleStrategy.jitterSpan())
	assert.Equal(t, 0.5, Weights{}.jitterSpan())
	assert.Equal(t, 7.5, Weights{Timezone: 30, Repeat: 45}.jitterSpan())
}

func TestWeights_base(t *testing.T) {
	assert.Equal(t, 100.0, WeightedStrategy.base(true, 0))
	assert.Equal(t, -100.0, WeightedStrategy.base(true, 1))
	assert.Equal(t, -400.0, WeightedStrategy.base(false, 2))
	assert.Equal(t, 1.0, SimpleStrategy.base(true, 1))
}
