package handlers

import (
	"time"

	"github.com/shopspring/decimal"

	"poseidon/internal/models"
	"poseidon/internal/services"
)

// BidListRequest represents the payload for creating or updating a bid list.
type BidListRequest struct {
	Version      int64      `json:"version"`
	Account      string     `json:"account" binding:"notblank,max=30"`
	Type         string     `json:"type" binding:"notblank,max=30"`
	BidQuantity  *float64   `json:"bid_quantity" binding:"required,gte=0"`
	AskQuantity  *float64   `json:"ask_quantity" binding:"omitempty,gte=0"`
	Bid          *float64   `json:"bid" binding:"omitempty,gte=0"`
	Ask          *float64   `json:"ask" binding:"omitempty,gte=0"`
	Benchmark    string     `json:"benchmark" binding:"max=125"`
	BidListDate  *time.Time `json:"bid_list_date"`
	Commentary   string     `json:"commentary" binding:"max=125"`
	Security     string     `json:"security" binding:"max=125"`
	Status       string     `json:"status" binding:"max=10"`
	Trader       string     `json:"trader" binding:"max=125"`
	Book         string     `json:"book" binding:"max=125"`
	DealName     string     `json:"deal_name" binding:"max=125"`
	DealType     string     `json:"deal_type" binding:"max=125"`
	SourceListID string     `json:"source_list_id" binding:"max=125"`
	Side         string     `json:"side" binding:"max=125"`
}

// NewBidListHandler creates the handler for /bid-lists.
func NewBidListHandler(svc services.BidListServicer, audit services.AuditServicer) *ResourceHandler[models.BidList, BidListRequest] {
	return newOwnedHandler(resource[models.BidList, BidListRequest]{
		name: "BidList",
		key:  "bid_list",
		toModel: func(r *BidListRequest, actor string, creating bool) *models.BidList {
			b := &models.BidList{
				Base:         models.Base{Version: r.Version},
				Account:      r.Account,
				Type:         r.Type,
				BidQuantity:  r.BidQuantity,
				AskQuantity:  r.AskQuantity,
				Bid:          r.Bid,
				Ask:          r.Ask,
				Benchmark:    r.Benchmark,
				BidListDate:  r.BidListDate,
				Commentary:   r.Commentary,
				Security:     r.Security,
				Status:       r.Status,
				Trader:       r.Trader,
				Book:         r.Book,
				DealName:     r.DealName,
				DealType:     r.DealType,
				SourceListID: r.SourceListID,
				Side:         r.Side,
			}
			if creating {
				b.CreationName = actor
			} else {
				b.RevisionName = actor
			}
			return b
		},
	}, svc, audit)
}

// CurvePointRequest represents the payload for creating or updating a curve point.
// Term and value accept JSON numbers or strings and keep their exact decimal value.
type CurvePointRequest struct {
	Version  int64            `json:"version"`
	CurveID  *int             `json:"curve_id" binding:"required,min=1"`
	AsOfDate *time.Time       `json:"as_of_date"`
	Term     *decimal.Decimal `json:"term" binding:"required"`
	Value    *decimal.Decimal `json:"value" binding:"required"`
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

// NewCurvePointHandler creates the handler for /curve-points.
func NewCurvePointHandler(svc services.CurvePointServicer, audit services.AuditServicer) *ResourceHandler[models.CurvePoint, CurvePointRequest] {
	return newOwnedHandler(resource[models.CurvePoint, CurvePointRequest]{
		name: "CurvePoint",
		key:  "curve_point",
		toModel: func(r *CurvePointRequest, actor string, creating bool) *models.CurvePoint {
			p := &models.CurvePoint{
				Base:     models.Base{Version: r.Version},
				CurveID:  r.CurveID,
				AsOfDate: r.AsOfDate,
				Term:     nullDecimal(r.Term),
				Value:    nullDecimal(r.Value),
			}
			if creating {
				p.CreationName = actor
			}
			return p
		},
	}, svc, audit)
}

// RatingRequest represents the payload for creating or updating a rating.
type RatingRequest struct {
	Version      int64  `json:"version"`
	MoodysRating string `json:"moodys_rating" binding:"max=125,moodys"`
	SandPRating  string `json:"sand_p_rating" binding:"max=125,sp_rating"`
	FitchRating  string `json:"fitch_rating" binding:"max=125,fitch_rating"`
	OrderNumber  *int   `json:"order_number" binding:"omitempty,min=1"`
}

// RatingResponse is a rating with its derived investment-grade flag.
type RatingResponse struct {
	*models.Rating
	InvestmentGrade bool `json:"investment_grade"`
}

// NewRatingHandler creates the handler for /ratings.
func NewRatingHandler(svc services.RatingServicer, audit services.AuditServicer) *ResourceHandler[models.Rating, RatingRequest] {
	return newPlainHandler(resource[models.Rating, RatingRequest]{
		name: "Rating",
		key:  "rating",
		toModel: func(r *RatingRequest, _ string, _ bool) *models.Rating {
			return &models.Rating{
				Base:         models.Base{Version: r.Version},
				MoodysRating: r.MoodysRating,
				SandPRating:  r.SandPRating,
				FitchRating:  r.FitchRating,
				OrderNumber:  r.OrderNumber,
			}
		},
		present: func(r *models.Rating) any {
			return RatingResponse{Rating: r, InvestmentGrade: r.InvestmentGrade()}
		},
	}, svc, audit)
}

// RuleNameRequest represents the payload for creating or updating a rule.
type RuleNameRequest struct {
	Version     int64  `json:"version"`
	Name        string `json:"name" binding:"notblank,max=125"`
	Description string `json:"description" binding:"max=125"`
	JSON        string `json:"json" binding:"max=125"`
	Template    string `json:"template" binding:"max=512"`
	SQLStr      string `json:"sql_str" binding:"max=125"`
	SQLPart     string `json:"sql_part" binding:"max=125"`
}

// NewRuleNameHandler creates the handler for /rule-names.
func NewRuleNameHandler(svc services.RuleNameServicer, audit services.AuditServicer) *ResourceHandler[models.RuleName, RuleNameRequest] {
	return newPlainHandler(resource[models.RuleName, RuleNameRequest]{
		name: "RuleName",
		key:  "rule_name",
		toModel: func(r *RuleNameRequest, _ string, _ bool) *models.RuleName {
			return &models.RuleName{
				Base:        models.Base{Version: r.Version},
				Name:        r.Name,
				Description: r.Description,
				JSON:        r.JSON,
				Template:    r.Template,
				SQLStr:      r.SQLStr,
				SQLPart:     r.SQLPart,
			}
		},
	}, svc, audit)
}

// TradeRequest represents the payload for creating or updating a trade. The
// buy/sell consistency rule is applied by the trade service.
type TradeRequest struct {
	Version      int64      `json:"version"`
	Account      string     `json:"account" binding:"notblank,max=30"`
	Type         string     `json:"type" binding:"notblank,max=30"`
	BuyQuantity  *float64   `json:"buy_quantity" binding:"omitempty,gt=0"`
	SellQuantity *float64   `json:"sell_quantity" binding:"omitempty,gt=0"`
	BuyPrice     *float64   `json:"buy_price" binding:"omitempty,gt=0"`
	SellPrice    *float64   `json:"sell_price" binding:"omitempty,gt=0"`
	TradeDate    *time.Time `json:"trade_date"`
	Security     string     `json:"security" binding:"max=125"`
	Status       string     `json:"status" binding:"max=10"`
	Trader       string     `json:"trader" binding:"max=125"`
	Benchmark    string     `json:"benchmark" binding:"max=125"`
	Book         string     `json:"book" binding:"max=125"`
	DealName     string     `json:"deal_name" binding:"max=125"`
	DealType     string     `json:"deal_type" binding:"max=125"`
	SourceListID string     `json:"source_list_id" binding:"max=125"`
	Side         string     `json:"side" binding:"max=125"`
}

// NewTradeHandler creates the handler for /trades.
func NewTradeHandler(svc services.TradeServicer, audit services.AuditServicer) *ResourceHandler[models.Trade, TradeRequest] {
	return newPlainHandler(resource[models.Trade, TradeRequest]{
		name: "Trade",
		key:  "trade",
		toModel: func(r *TradeRequest, actor string, creating bool) *models.Trade {
			t := &models.Trade{
				Base:         models.Base{Version: r.Version},
				Account:      r.Account,
				Type:         r.Type,
				BuyQuantity:  r.BuyQuantity,
				SellQuantity: r.SellQuantity,
				BuyPrice:     r.BuyPrice,
				SellPrice:    r.SellPrice,
				TradeDate:    r.TradeDate,
				Security:     r.Security,
				Status:       r.Status,
				Trader:       r.Trader,
				Benchmark:    r.Benchmark,
				Book:         r.Book,
				DealName:     r.DealName,
				DealType:     r.DealType,
				SourceListID: r.SourceListID,
				Side:         r.Side,
			}
			if creating {
				t.CreationName = actor
			} else {
				t.RevisionName = actor
			}
			return t
		},
	}, svc, audit)
}
