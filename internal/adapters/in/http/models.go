package http

import "time"

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Created is returned by the routes that create a resource.
type Created struct {
	ID string `json:"id"`
}

type OpenCommandRequest struct {
	Name    string `json:"name"`
	People  int    `json:"people"`
	TableID string `json:"tableId"`
}

type ChangeStatusRequest struct {
	Status         string `json:"status"`
	CloseAllOrders bool   `json:"closeAllOrders"`
}

type ReassignTableRequest struct {
	TableID string `json:"tableId"`
}

type ReasonRequest struct {
	Reason string `json:"reason"`
}

// Money values travel as decimal strings such as "12.50".
type DiscountRequest struct {
	Amount      string  `json:"amount"`
	Description *string `json:"description"`
}

type DiscountResponse struct {
	Total string `json:"total"`
}

type AddOrderRequest struct {
	ProductID         string  `json:"productId"`
	SelectedOptionIDs []int64 `json:"selectedOptionIds"`
	Notes             *string `json:"notes"`
	Priority          int     `json:"priority"`
}

type ActiveCommand struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	People           int       `json:"people"`
	TableNumber      int       `json:"tableNumber"`
	Status           string    `json:"status"`
	Total            *string   `json:"total"`
	UnfinishedOrders int       `json:"unfinishedOrders"`
	OpenedAt         time.Time `json:"openedAt"`
}

type OpenCashSessionRequest struct {
	CompanyID    int64  `json:"companyId"`
	InitialValue string `json:"initialValue"`
}

type CloseCashSessionRequest struct {
	Cash         string  `json:"cash"`
	Card         string  `json:"card"`
	Pix          string  `json:"pix"`
	Others       string  `json:"others"`
	Expected     *string `json:"expected"`
	Observations *string `json:"observations"`
}

type Closing struct {
	FinalBalance           string  `json:"finalBalance"`
	FinalBalanceExpected   string  `json:"finalBalanceExpected"`
	FinalBalanceDifference string  `json:"finalBalanceDifference"`
	Observations           *string `json:"observations"`
}
