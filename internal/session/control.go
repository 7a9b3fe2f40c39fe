package session

import "github.com/rotmg-fleet/clientless/internal/protocol"

// Email returns the account identity this session is running, useful for
// fleet-level logging without reaching into config.Account directly.
func (s *Session) Email() string { return s.account.Email }

// Shoot fires a single attack at the given angle from the client's current
// position, subject to the attack-cooldown/effect gating in combat.go.
func (s *Session) Shoot(angle float32) {
	s.shoot(angle)
}

// SendText queues a chat line as the client.
func (s *Session) SendText(message string) error {
	return s.sendCommand(protocol.PlayerText{Message: message})
}
