package issues

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type subject struct {
	id   int
	name string
}

func (s subject) IssueID() int          { return s.id }
func (s subject) QualifiedName() string { return s.name }
func (s subject) KindName() string      { return "FunctionFlow" }
func (s subject) Location() string      { return "main.hcl:3" }

func TestSink_KeepsOrderAndAttribution(t *testing.T) {
	sink := NewSink()
	flow := subject{id: 4, name: "web.handle.next"}

	sink.Add(flow, CodeUnresolvedLink, "flow %q is not linked", "next")
	sink.AddCause(nil, CodeTypeLoad, errors.New("boom"), "loader failed")
	sink.Add(flow, CodeRelinked, "relinked")

	got := sink.Issues()
	require.Len(t, got, 3)
	assert.Equal(t, CodeUnresolvedLink, got[0].Code)
	assert.Equal(t, 4, got[0].NodeID)
	assert.Equal(t, "web.handle.next", got[0].Node)
	assert.Equal(t, `flow "next" is not linked`, got[0].Message)
	assert.Equal(t, 0, got[1].NodeID)
	assert.EqualError(t, got[1].Cause, "boom")
	assert.Equal(t, CodeRelinked, got[2].Code)

	assert.Len(t, sink.ByNode(4), 2)
	assert.Len(t, sink.ByCode(CodeTypeLoad), 1)
	assert.False(t, sink.Empty())
}

func TestSink_IssuesIsACopy(t *testing.T) {
	sink := NewSink()
	sink.Add(nil, CodeBuild, "x")

	got := sink.Issues()
	got[0].Message = "changed"

	assert.Equal(t, "x", sink.Issues()[0].Message)
}

func TestSink_Observers(t *testing.T) {
	var seen []Code
	sink := NewSink(func(i Issue) { seen = append(seen, i.Code) })
	sink.Observe(func(i Issue) { seen = append(seen, i.Code+"!") })

	sink.Add(nil, CodeCyclicLink, "cycle")

	assert.Equal(t, []Code{CodeCyclicLink, CodeCyclicLink + "!"}, seen)
}

func TestSink_Err(t *testing.T) {
	sink := NewSink()
	require.NoError(t, sink.Err())

	sink.AddCause(subject{id: 1, name: "MOS1"}, CodeBuild, errors.New("refused"), "bind failed")
	err := sink.Err()
	require.Error(t, err)

	var issuesErr *Error
	require.ErrorAs(t, err, &issuesErr)
	assert.Len(t, issuesErr.Issues, 1)
	assert.Contains(t, err.Error(), "BD-001 MOS1 (FunctionFlow) at main.hcl:3: bind failed: refused")
}
