package domain

import "time"

type OrderSide string

const (
	SideBuy  OrderSide = "buy"
	SideSell OrderSide = "sell"
)

type OrderStatus string

const (
	OrderActive    OrderStatus = "active"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

type HeistPhase string

const (
	PhaseJoining   HeistPhase = "joining"
	PhaseSplitting HeistPhase = "splitting"
	PhaseFinished  HeistPhase = "finished"
)

// SkillKind is the closed set of trainable skills. Skills are updated
// through one function per kind, never through interpolated column names.
type SkillKind string

const (
	SkillShare  SkillKind = "share"
	SkillLuck   SkillKind = "luck"
	SkillBetray SkillKind = "betray"
)

// CounterKind is the closed set of per-account event counters.
type CounterKind string

const (
	CounterTheftAttempts        CounterKind = "theft_attempts"
	CounterTheftSuccess         CounterKind = "theft_success"
	CounterTheftFailed          CounterKind = "theft_failed"
	CounterTheftProtected       CounterKind = "theft_protected"
	CounterHeistsJoined         CounterKind = "heists_joined"
	CounterHeistBetrayAttempts  CounterKind = "heists_betray_attempts"
	CounterHeistBetraySuccess   CounterKind = "heists_betray_success"
	CounterHeistsBetrayedCount  CounterKind = "heists_betrayed_count"
)

type Account struct {
	ID                  int64     `db:"id"`
	Username            string    `db:"username"`
	Cash                float64   `db:"cash"`
	Debt                float64   `db:"debt"`
	Crypto              float64   `db:"crypto"`
	Reputation          int       `db:"reputation"`
	SkillShare          int       `db:"skill_share"`
	SkillLuck           int       `db:"skill_luck"`
	SkillBetray         int       `db:"skill_betray"`
	Strength            int       `db:"strength"`
	Agility             int       `db:"agility"`
	Defense             int       `db:"defense"`
	Exp                 int64     `db:"exp"`
	Level               int       `db:"level"`
	TheftAttempts       int       `db:"theft_attempts"`
	TheftSuccess        int       `db:"theft_success"`
	TheftFailed         int       `db:"theft_failed"`
	TheftProtected      int       `db:"theft_protected"`
	HeistsJoined        int       `db:"heists_joined"`
	HeistBetrayAttempts int       `db:"heists_betray_attempts"`
	HeistBetraySuccess  int       `db:"heists_betray_success"`
	HeistsBetrayedCount int       `db:"heists_betrayed_count"`
	HeistsEarned        float64   `db:"heists_earned"`
	ReferrerID          *int64    `db:"referrer_id"`
	ReferralRewardGiven bool      `db:"referral_reward_given"`
	CreatedAt           time.Time `db:"created_at"`
}

type Order struct {
	ID        int         `db:"id"`
	AccountID int64       `db:"account_id"`
	Side      OrderSide   `db:"side"`
	Price     int         `db:"price"`
	Amount    float64     `db:"amount"`
	Locked    float64     `db:"locked"`
	Status    OrderStatus `db:"status"`
	CreatedAt time.Time   `db:"created_at"`
}

type Trade struct {
	ID          int       `db:"id"`
	BuyOrderID  int       `db:"buy_order_id"`
	SellOrderID int       `db:"sell_order_id"`
	Amount      float64   `db:"amount"`
	Price       int       `db:"price"`
	CreatedAt   time.Time `db:"created_at"`
}

// PriceLevel is one aggregated row of the order book.
type PriceLevel struct {
	Price  int     `db:"price"`
	Amount float64 `db:"amount"`
	Orders int     `db:"orders"`
}

type HeistEvent struct {
	ID          int     `db:"id"`
	Title       string  `db:"title"`
	Keyword     string  `db:"keyword"`
	PotMin      int     `db:"pot_min"`
	PotMax      int     `db:"pot_max"`
	BonusChance int     `db:"bonus_chance"`
	BonusMin    float64 `db:"bonus_min"`
	BonusMax    float64 `db:"bonus_max"`
}

type Heist struct {
	ID            int        `db:"id"`
	RoomID        int64      `db:"room_id"`
	EventID       int        `db:"event_id"`
	Pot           int        `db:"pot"`
	Bonus         float64    `db:"bonus"`
	Phase         HeistPhase `db:"phase"`
	JoinDeadline  time.Time  `db:"join_deadline"`
	SplitDeadline time.Time  `db:"split_deadline"`
	CreatedAt     time.Time  `db:"created_at"`
}

type HeistParticipant struct {
	HeistID      int       `db:"heist_id"`
	AccountID    int64     `db:"account_id"`
	BaseShare    float64   `db:"base_share"`
	CurrentShare float64   `db:"current_share"`
	BonusShare   float64   `db:"bonus_share"`
	DefenseBonus int       `db:"defense_bonus"`
	JoinedAt     time.Time `db:"joined_at"`
}

type Betrayal struct {
	ID         int       `db:"id"`
	HeistID    int       `db:"heist_id"`
	AttackerID int64     `db:"attacker_id"`
	TargetID   int64     `db:"target_id"`
	Success    bool      `db:"success"`
	Amount     float64   `db:"amount"`
	CreatedAt  time.Time `db:"created_at"`
}
