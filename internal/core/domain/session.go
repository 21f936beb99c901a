package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// DefaultPlayerHealth 每位玩家開局血量
const DefaultPlayerHealth = 10

// Session 代表一場雙人對戰的狀態機。
// 只由單一 Session Runner 擁有，不做任何 I/O，也不需要鎖。
type Session struct {
	player1 *combatant
	player2 *combatant

	canAdvance bool
	winnerID   uuid.UUID
	loserID    uuid.UUID
}

type combatant struct {
	id     uuid.UUID
	health int
}

func (c *combatant) takeDamage(damage int) {
	c.health -= damage
}

func (c *combatant) alive() bool {
	return c.health > 0
}

// NewSession 建立一場新的對戰
//
// 參數:
//
//	player1ID: uuid.UUID - 先判定的玩家 (房主)
//	player2ID: uuid.UUID - 後判定的玩家 (跟隨者)
//
// 回傳值:
//
//	*Session: 處於可推進狀態的對戰
func NewSession(player1ID, player2ID uuid.UUID) *Session {
	return &Session{
		player1:    &combatant{id: player1ID, health: DefaultPlayerHealth},
		player2:    &combatant{id: player2ID, health: DefaultPlayerHealth},
		canAdvance: true,
	}
}

// Advance 推進一回合。
// 兩個傷害值都會套用；先判定玩家 1 再判定玩家 2，
// 同回合雙方倒下時以後者的判定為準 (玩家 2 的判定覆蓋，玩家 1 勝)。
//
// 參數:
//
//	damageToPlayer1: int - 玩家 1 受到的傷害
//	damageToPlayer2: int - 玩家 2 受到的傷害
//
// 回傳值:
//
//	error: 對戰已結束時回傳 ErrInvalidState
func (s *Session) Advance(damageToPlayer1, damageToPlayer2 int) error {
	if !s.canAdvance {
		return fmt.Errorf("advance concluded session: %w", ErrInvalidState)
	}

	s.player1.takeDamage(damageToPlayer1)
	if !s.player1.alive() {
		s.conclude(s.player2, s.player1)
	}

	s.player2.takeDamage(damageToPlayer2)
	if !s.player2.alive() {
		s.conclude(s.player1, s.player2)
	}

	return nil
}

func (s *Session) conclude(winner, loser *combatant) {
	s.winnerID = winner.id
	s.loserID = loser.id
	s.canAdvance = false
}

// CanAdvance 雙方血量皆為正時為 true
func (s *Session) CanAdvance() bool {
	return s.canAdvance
}

// WinnerID 勝者 ID，對戰未結束時 ok 為 false
func (s *Session) WinnerID() (uuid.UUID, bool) {
	return s.winnerID, !s.canAdvance
}

// LoserID 敗者 ID，對戰未結束時 ok 為 false
func (s *Session) LoserID() (uuid.UUID, bool) {
	return s.loserID, !s.canAdvance
}

// Player1 回傳玩家 1 的 ID 與目前血量
func (s *Session) Player1() (uuid.UUID, int) {
	return s.player1.id, s.player1.health
}

// Player2 回傳玩家 2 的 ID 與目前血量
func (s *Session) Player2() (uuid.UUID, int) {
	return s.player2.id, s.player2.health
}
