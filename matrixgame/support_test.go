package matrixgame

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/timpalpant/nashgame"
)

func TestSubsets(t *testing.T) {
	assert.Equal(t, []nashgame.Support{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}, Subsets(4, 2))
	assert.Equal(t, []nashgame.Support{{0}, {1}, {2}}, Subsets(3, 1))
	assert.Equal(t, []nashgame.Support{{0, 1, 2}}, Subsets(3, 3))
	assert.Nil(t, Subsets(3, 0))
	assert.Nil(t, Subsets(2, 3))
}

func TestPlayerSupports(t *testing.T) {
	assert.Equal(t, []nashgame.Support{{0}, {1}, {2}, {0, 1}, {0, 2}, {1, 2}}, PlayerSupports(3, 2))
	assert.Len(t, PlayerSupports(3, 10), 7)
}

func TestStageOrder(t *testing.T) {
	stage := NewStage([]int{2, 2}, 2)
	assert.Equal(t, 2, stage.MaxSupportSize())
	assert.Equal(t, 9, stage.Len())

	var candidates []nashgame.SupportProfile
	for stage.Next() {
		candidates = append(candidates, stage.Value())
	}
	assert.Equal(t, stage.Candidates(), candidates)

	assert.Equal(t, []nashgame.SupportProfile{
		{{0}, {0}}, {{0}, {1}}, {{1}, {0}}, {{1}, {1}},
		{{0}, {0, 1}}, {{1}, {0, 1}}, {{0, 1}, {0}}, {{0, 1}, {1}},
		{{0, 1}, {0, 1}},
	}, candidates)

	assert.False(t, stage.Next())
	stage.Reset()
	assert.True(t, stage.Next())
	assert.Equal(t, nashgame.SupportProfile{{0}, {0}}, stage.Value())
}

func TestStageTotalSizeNonDecreasing(t *testing.T) {
	for _, actionCounts := range [][]int{{3, 3}, {2, 3, 2}, {4, 1}} {
		for k := 1; k <= 4; k++ {
			stage := NewStage(actionCounts, k)
			prev := 0
			for stage.Next() {
				size := totalSize(stage.Value())
				assert.True(t, size >= prev, "%v k=%d", actionCounts, k)
				prev = size
			}
		}
	}
}

func TestStageSize(t *testing.T) {
	for _, actionCounts := range [][]int{{2, 2}, {3, 3}, {2, 3, 2}, {5, 4}, {1, 6}} {
		for k := 1; k <= 5; k++ {
			assert.Equal(t, NewStage(actionCounts, k).Len(), StageSize(actionCounts, k),
				"%v k=%d", actionCounts, k)
		}
	}

	assert.Equal(t, 49, StageSize([]int{3, 3}, 3))
}
