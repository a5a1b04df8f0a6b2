package scheduling

import (
	"errors"
	"fmt"
)

// ErrInvalidPolicy возвращается при некорректных параметрах политики
var ErrInvalidPolicy = errors.New("scheduling: invalid policy")

// GapRule правило блокировки слотов рядом с занятым временем
type GapRule string

const (
	// GapRuleExact блокирует слот, если от последней занятой границы до него ровно GapGranularityMinutes
	GapRuleExact GapRule = "exact"

	// GapRuleBelow блокирует слот, если от последней занятой границы до него больше нуля,
	// но меньше MinIdleGapMinutes
	GapRuleBelow GapRule = "below"
)

// Policy параметры расписания площадки. Одна политика на все сценарии
// (бронирование, перенос, стойка администратора).
type Policy struct {
	SlotStepMinutes          int
	TrailingWindowMinutes    int // минимум минут от начала слота до закрытия
	GapRule                  GapRule
	GapGranularityMinutes    int
	MinIdleGapMinutes        int
	NextBookingBufferMinutes int // перерыв перед следующей бронью
	RoundingMinutes          int // шаг округления максимальной длительности вниз
}

// DefaultPolicy политика по умолчанию: сетка 30 минут, правило "ровно 30", буфер 1 час
func DefaultPolicy() Policy {
	return Policy{
		SlotStepMinutes:          30,
		TrailingWindowMinutes:    30,
		GapRule:                  GapRuleExact,
		GapGranularityMinutes:    30,
		MinIdleGapMinutes:        60,
		NextBookingBufferMinutes: 60,
		RoundingMinutes:          30,
	}
}

// Validate проверяет политику
func (p Policy) Validate() error {
	switch {
	case p.SlotStepMinutes <= 0:
		return fmt.Errorf("%w: slot step must be positive", ErrInvalidPolicy)
	case p.TrailingWindowMinutes < 0:
		return fmt.Errorf("%w: trailing window must not be negative", ErrInvalidPolicy)
	case p.RoundingMinutes <= 0:
		return fmt.Errorf("%w: rounding must be positive", ErrInvalidPolicy)
	case p.NextBookingBufferMinutes < 0:
		return fmt.Errorf("%w: next booking buffer must not be negative", ErrInvalidPolicy)
	}

	switch p.GapRule {
	case GapRuleExact:
		if p.GapGranularityMinutes <= 0 {
			return fmt.Errorf("%w: gap granularity must be positive", ErrInvalidPolicy)
		}
	case GapRuleBelow:
		if p.MinIdleGapMinutes <= 0 {
			return fmt.Errorf("%w: min idle gap must be positive", ErrInvalidPolicy)
		}
	default:
		return fmt.Errorf("%w: unknown gap rule %q", ErrInvalidPolicy, p.GapRule)
	}

	return nil
}

// isGapBlocked применяет правило к расстоянию от последней занятой границы до слота
func (p Policy) isGapBlocked(gapMinutes int) bool {
	switch p.GapRule {
	case GapRuleBelow:
		return gapMinutes > 0 && gapMinutes < p.MinIdleGapMinutes
	default:
		return gapMinutes == p.GapGranularityMinutes
	}
}
