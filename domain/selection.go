package domain

import (
	"time"

	"gorm.io/datatypes"
)

// BestOffer is the display summary of the selected offer. Values are rounded;
// the ranked table keeps full precision.
type BestOffer struct {
	SupplierID SupplierID `json:"supplier_id"`
	PWin       float64    `json:"p_win"`
	MarginPct  float64    `json:"margin_pct"`
	Utility    float64    `json:"utility"`
}

type SelectionResult struct {
	SelectionID string        `json:"selection_id,omitempty"`
	MarginFloor float64       `json:"margin_floor"`
	Best        BestOffer     `json:"best"`
	Ranked      []ScoredOffer `json:"ranked"`
}

// CREATE TABLE public.selection_records (
//     id           UUID PRIMARY KEY,
//     margin_floor NUMERIC NOT NULL,
//     supplier_id  TEXT NOT NULL,
//     p_win        NUMERIC,
//     margin_pct   NUMERIC,
//     utility      NUMERIC,
//     offer_count  INT,
//     estimator    TEXT,
//     ranked       JSONB,
//     created_at   TIMESTAMPTZ DEFAULT NOW()
// );

type SelectionRecord struct {
	ID          string         `gorm:"column:id;primaryKey" json:"id"`
	MarginFloor float64        `gorm:"column:margin_floor;type:numeric" json:"margin_floor"`
	SupplierID  string         `gorm:"column:supplier_id;type:text" json:"supplier_id"`
	PWin        float64        `gorm:"column:p_win;type:numeric" json:"p_win"`
	MarginPct   float64        `gorm:"column:margin_pct;type:numeric" json:"margin_pct"`
	Utility     float64        `gorm:"column:utility;type:numeric" json:"utility"`
	OfferCount  int            `gorm:"column:offer_count" json:"offer_count"`
	Estimator   string         `gorm:"column:estimator;type:text" json:"estimator"`
	Ranked      datatypes.JSON `gorm:"column:ranked;type:jsonb" json:"ranked"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (SelectionRecord) TableName() string {
	return "selection_records"
}
