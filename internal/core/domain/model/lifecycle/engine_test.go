package lifecycle_test

import (
	"fmt"
	"testing"

	"warehouse/internal/core/domain/model/lifecycle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	admin    = lifecycle.RoleAdmin.Capabilities()
	operator = lifecycle.RoleOperator.Capabilities()
)

func TestEngine_NextPossibleStates(t *testing.T) {
	engine := lifecycle.Default()

	expected := map[lifecycle.Status][]lifecycle.Status{
		lifecycle.Received:      {lifecycle.InAnalysis, lifecycle.Cancelled},
		lifecycle.InAnalysis:    {lifecycle.Approved, lifecycle.Rejected, lifecycle.Cancelled},
		lifecycle.Approved:      {lifecycle.InStorage, lifecycle.Cancelled},
		lifecycle.Rejected:      {lifecycle.InReturn, lifecycle.Eliminated},
		lifecycle.InStorage:     {lifecycle.InPreparation, lifecycle.Cancelled},
		lifecycle.InPreparation: {lifecycle.InShipping, lifecycle.InStorage, lifecycle.Cancelled},
		lifecycle.InShipping:    {lifecycle.Delivered, lifecycle.InReturn},
		lifecycle.Delivered:     {},
		lifecycle.InReturn:      {lifecycle.Received, lifecycle.Eliminated},
		lifecycle.Eliminated:    {},
		lifecycle.Cancelled:     {lifecycle.InStorage},
	}

	for _, status := range lifecycle.AllStatuses() {
		t.Run(status.String(), func(t *testing.T) {
			next := engine.NextPossibleStates(status)

			assert.ElementsMatch(t, expected[status], next)
			assert.Equal(t, len(next) == 0, engine.IsFinal(status))
			assert.NotContains(t, next, status, "self-loops are never legal")
		})
	}
}

func TestEngine_TerminalStatuses(t *testing.T) {
	engine := lifecycle.Default()

	var final []lifecycle.Status
	for _, status := range lifecycle.AllStatuses() {
		if engine.IsFinal(status) {
			final = append(final, status)
		}
	}

	assert.Equal(t, []lifecycle.Status{lifecycle.Delivered, lifecycle.Eliminated}, final)
}

func TestEngine_EdgesFromReturnsACopy(t *testing.T) {
	engine := lifecycle.Default()

	edges := engine.EdgesFrom(lifecycle.Received)
	edges[0] = lifecycle.Delivered

	assert.Equal(t, lifecycle.InAnalysis, engine.EdgesFrom(lifecycle.Received)[0])
}

func TestEngine_IsLegal(t *testing.T) {
	engine := lifecycle.Default()

	testCases := []struct {
		from, to lifecycle.Status
		legal    bool
	}{
		{lifecycle.Cancelled, lifecycle.InStorage, true},
		{lifecycle.InReturn, lifecycle.Received, true},
		{lifecycle.InReturn, lifecycle.Eliminated, true},
		{lifecycle.Received, lifecycle.InAnalysis, true},
		{lifecycle.Received, lifecycle.Approved, false},
		{lifecycle.Delivered, lifecycle.InShipping, false},
		{lifecycle.Received, lifecycle.Received, false},
		{lifecycle.Unknown, lifecycle.Received, false},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s->%s", tc.from, tc.to), func(t *testing.T) {
			assert.Equal(t, tc.legal, engine.IsLegal(tc.from, tc.to))
		})
	}
}

func TestEngine_Authorize(t *testing.T) {
	engine := lifecycle.Default()

	t.Run("admin may approve", func(t *testing.T) {
		decision := engine.Authorize(lifecycle.InAnalysis, lifecycle.Approved, admin)

		assert.True(t, decision.Allowed)
		assert.Empty(t, decision.Reason)
	})

	t.Run("operator may not approve", func(t *testing.T) {
		decision := engine.Authorize(lifecycle.InAnalysis, lifecycle.Approved, operator)

		assert.False(t, decision.Allowed)
		assert.Equal(t, "requires administrator role", decision.Reason)
	})

	t.Run("super admin passes every admin gate", func(t *testing.T) {
		superAdmin := lifecycle.RoleSuperAdmin.Capabilities()

		assert.True(t, engine.Authorize(lifecycle.InAnalysis, lifecycle.Approved, superAdmin).Allowed)
		assert.True(t, engine.Authorize(lifecycle.Cancelled, lifecycle.InStorage, superAdmin).Allowed)
	})

	t.Run("illegality is reported before the role gate", func(t *testing.T) {
		decision := engine.Authorize(lifecycle.Received, lifecycle.Delivered, admin)

		assert.False(t, decision.Allowed)
		assert.Equal(t, "transition not permitted from RECEIVED to DELIVERED", decision.Reason)
	})

	t.Run("operator may take edges without admin policy", func(t *testing.T) {
		assert.True(t, engine.Authorize(lifecycle.Received, lifecycle.InAnalysis, operator).Allowed)
		assert.True(t, engine.Authorize(lifecycle.Approved, lifecycle.InStorage, operator).Allowed)
	})
}

func TestEngine_ValidateFields(t *testing.T) {
	engine := lifecycle.Default()

	t.Run("missing reason on rejection", func(t *testing.T) {
		result := engine.ValidateFields(lifecycle.InAnalysis, lifecycle.Rejected, map[string]any{})

		assert.False(t, result.Valid())
		assert.Equal(t, []string{"reason"}, result.MissingFields)
	})

	t.Run("whitespace-only reason counts as missing", func(t *testing.T) {
		result := engine.ValidateFields(lifecycle.InAnalysis, lifecycle.Rejected, map[string]any{"reason": "   "})

		assert.Equal(t, []string{"reason"}, result.MissingFields)
	})

	t.Run("reason supplied", func(t *testing.T) {
		result := engine.ValidateFields(lifecycle.InAnalysis, lifecycle.Rejected, map[string]any{"reason": "Produto danificado"})

		assert.True(t, result.Valid())
	})

	t.Run("nil data means every field is missing", func(t *testing.T) {
		result := engine.ValidateFields(lifecycle.InAnalysis, lifecycle.Rejected, nil)

		assert.Equal(t, []string{"reason"}, result.MissingFields)
	})

	t.Run("edge without policy is always valid", func(t *testing.T) {
		assert.True(t, engine.ValidateFields(lifecycle.Approved, lifecycle.InStorage, map[string]any{}).Valid())
		assert.True(t, engine.ValidateFields(lifecycle.Approved, lifecycle.InStorage, nil).Valid())
		assert.Equal(t, lifecycle.Policy{}, engine.PolicyFor(lifecycle.Approved, lifecycle.InStorage))
	})

	t.Run("named field required", func(t *testing.T) {
		result := engine.ValidateFields(lifecycle.InPreparation, lifecycle.InShipping, map[string]any{"reason": "x"})

		assert.Equal(t, []string{"location"}, result.MissingFields)
	})

	t.Run("nil string pointer is missing, set pointer is present", func(t *testing.T) {
		var unset *string
		set := "Truck 12"

		assert.False(t, engine.ValidateFields(lifecycle.InPreparation, lifecycle.InShipping,
			map[string]any{"location": unset}).Valid())
		assert.True(t, engine.ValidateFields(lifecycle.InPreparation, lifecycle.InShipping,
			map[string]any{"location": &set}).Valid())
	})

	t.Run("non textual values count as present", func(t *testing.T) {
		result := engine.ValidateFields(lifecycle.InPreparation, lifecycle.InShipping, map[string]any{"location": 42})

		assert.True(t, result.Valid())
	})
}

func TestPolicy_Fields(t *testing.T) {
	t.Run("reason is appended after declared fields", func(t *testing.T) {
		p := lifecycle.Policy{RequiresComment: true, RequiredFields: []string{"location", "carrier"}}

		assert.Equal(t, []string{"location", "carrier", "reason"}, p.Fields())
	})

	t.Run("reason is not duplicated", func(t *testing.T) {
		p := lifecycle.Policy{RequiresComment: true, RequiredFields: []string{"reason", "location"}}

		assert.Equal(t, []string{"reason", "location"}, p.Fields())
	})

	t.Run("empty policy has no fields", func(t *testing.T) {
		assert.Empty(t, lifecycle.Policy{}.Fields())
	})
}

func TestNewEngine_RejectsInconsistentTables(t *testing.T) {
	complete := func() map[lifecycle.Status][]lifecycle.Status {
		graph := make(map[lifecycle.Status][]lifecycle.Status)
		for _, s := range lifecycle.AllStatuses() {
			graph[s] = nil
		}
		graph[lifecycle.Received] = []lifecycle.Status{lifecycle.InAnalysis}
		return graph
	}

	t.Run("valid tables", func(t *testing.T) {
		engine, err := lifecycle.NewEngine(complete(), map[lifecycle.Edge]lifecycle.Policy{
			{From: lifecycle.Received, To: lifecycle.InAnalysis}: {RequiresComment: true},
		})

		require.NoError(t, err)
		assert.True(t, engine.IsLegal(lifecycle.Received, lifecycle.InAnalysis))
	})

	t.Run("graph not total", func(t *testing.T) {
		graph := complete()
		delete(graph, lifecycle.Cancelled)

		_, err := lifecycle.NewEngine(graph, nil)

		assert.ErrorContains(t, err, "CANCELLED has no edge set")
	})

	t.Run("self loop", func(t *testing.T) {
		graph := complete()
		graph[lifecycle.InStorage] = []lifecycle.Status{lifecycle.InStorage}

		_, err := lifecycle.NewEngine(graph, nil)

		assert.ErrorContains(t, err, "self-loop on IN_STORAGE")
	})

	t.Run("duplicate edge", func(t *testing.T) {
		graph := complete()
		graph[lifecycle.Received] = []lifecycle.Status{lifecycle.InAnalysis, lifecycle.InAnalysis}

		_, err := lifecycle.NewEngine(graph, nil)

		assert.ErrorContains(t, err, "duplicate edge")
	})

	t.Run("invalid target", func(t *testing.T) {
		graph := complete()
		graph[lifecycle.Received] = []lifecycle.Status{lifecycle.Status(99)}

		_, err := lifecycle.NewEngine(graph, nil)

		assert.ErrorContains(t, err, "status is invalid")
	})

	t.Run("policy on a non-edge", func(t *testing.T) {
		_, err := lifecycle.NewEngine(complete(), map[lifecycle.Edge]lifecycle.Policy{
			{From: lifecycle.Received, To: lifecycle.Delivered}: {RequiresAdminRole: true},
		})

		assert.ErrorContains(t, err, "policy declared for non-edge RECEIVED -> DELIVERED")
	})
}

func TestEngine_ConcurrentReads(t *testing.T) {
	engine := lifecycle.Default()
	done := make(chan struct{})

	for range 20 {
		go func() {
			defer func() { done <- struct{}{} }()
			for _, s := range lifecycle.AllStatuses() {
				for _, next := range engine.NextPossibleStates(s) {
					_ = engine.Authorize(s, next, operator)
					_ = engine.ValidateFields(s, next, nil)
				}
			}
		}()
	}

	for range 20 {
		<-done
	}
}
