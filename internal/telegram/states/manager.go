package states

import (
	"fmt"
	"sync"

	"azadinet-bot/internal/telegram/flows"
)

// Manager управляет состояниями диалогов в памяти
type Manager struct {
	mu         sync.RWMutex
	userStates map[int64]State
	userData   map[int64]any
}

// NewManager создает новый менеджер состояний
func NewManager() *Manager {
	return &Manager{
		userStates: make(map[int64]State),
		userData:   make(map[int64]any),
	}
}

// GetState получает текущее состояние чата
func (m *Manager) GetState(chatID int64) State {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state, exists := m.userStates[chatID]
	if !exists {
		return StateNone
	}
	return state
}

// GetData получает данные флоу чата
func (m *Manager) GetData(chatID int64) any {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.userData[chatID]
}

// SetState устанавливает состояние. Данные флоу заменяются только если data != nil.
func (m *Manager) SetState(chatID int64, state State, data any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !state.IsActive() {
		delete(m.userStates, chatID)
		delete(m.userData, chatID)
		return
	}

	m.userStates[chatID] = state
	if data != nil {
		m.userData[chatID] = data
	}
}

// Clear очищает состояние и данные флоу
func (m *Manager) Clear(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.userStates, chatID)
	delete(m.userData, chatID)
}

// GetAddConfigData получает данные флоу добавления конфига
func (m *Manager) GetAddConfigData(chatID int64) (*flows.AddConfigFlowData, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, exists := m.userData[chatID]
	if !exists {
		return nil, fmt.Errorf("no data for chat %d", chatID)
	}

	flowData, ok := data.(*flows.AddConfigFlowData)
	if !ok {
		return nil, fmt.Errorf("invalid data type for chat %d", chatID)
	}

	return flowData, nil
}
