package tui

import (
	"context"
	"testing"

	"github.com/Ambaicci/zwip/internal/ledger"
	"github.com/Ambaicci/zwip/internal/model"
	"github.com/Ambaicci/zwip/internal/service"
	"github.com/Ambaicci/zwip/internal/wizard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	state *model.WalletState
}

func (m *memStore) LoadState(_ context.Context) (*model.WalletState, error) {
	if m.state == nil {
		return nil, service.ErrStateNotFound
	}
	copied := *m.state
	return &copied, nil
}

func (m *memStore) SaveState(_ context.Context, state *model.WalletState) error {
	copied := *state
	m.state = &copied
	return nil
}

func (m *memStore) DeleteState(_ context.Context) error {
	m.state = nil
	return nil
}

func (m *memStore) Migrate(_ context.Context) error { return nil }
func (m *memStore) Close() error                    { return nil }

func newTestLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	store := &memStore{
		state: &model.WalletState{
			User:    &model.User{Name: "Test User"},
			Balance: model.MustParseMoney("100.00"),
		},
	}
	l, err := ledger.New(context.Background(), store)
	require.NoError(t, err)
	return l
}

func TestSelectTarget_EmptyCatalogDoesNotAdvance(t *testing.T) {
	l := newTestLedger(t)
	session := wizard.NewSession(wizard.SendFlow(nil), l, nil)
	m := newModel(context.Background(), session, l)

	updated, _ := m.updateSelectTarget(tea.KeyMsg{Type: tea.KeyEnter})
	got, ok := updated.(Model)
	require.True(t, ok)
	assert.Equal(t, wizard.StepSelectTarget, got.session.Step())
}

func TestSelectTarget_CursorStaysInBounds(t *testing.T) {
	l := newTestLedger(t)
	contacts := []model.Contact{{ID: "c1", Name: "Sarah Wilson", Phone: "+1 (555) 111-2222"}}
	session := wizard.NewSession(wizard.SendFlow(contacts), l, nil)
	m := newModel(context.Background(), session, l)

	updated, _ := m.updateSelectTarget(tea.KeyMsg{Type: tea.KeyDown})
	got := updated.(Model)
	assert.Equal(t, 0, got.cursor, "single entry: down does not move")

	updated, _ = got.updateSelectTarget(tea.KeyMsg{Type: tea.KeyUp})
	got = updated.(Model)
	assert.Equal(t, 0, got.cursor)
}

func TestSelectTarget_EnterSelectsContact(t *testing.T) {
	l := newTestLedger(t)
	contacts := []model.Contact{{ID: "c1", Name: "Sarah Wilson", Phone: "+1 (555) 111-2222"}}
	session := wizard.NewSession(wizard.SendFlow(contacts), l, nil)
	m := newModel(context.Background(), session, l)

	updated, _ := m.updateSelectTarget(tea.KeyMsg{Type: tea.KeyEnter})
	got := updated.(Model)
	assert.Equal(t, wizard.StepEnterAmount, got.session.Step())
	assert.Equal(t, "Sarah Wilson", got.session.Counterparty().DisplayName())
}
