package request

type CreateSessionRequest struct {
	BudgetID string `json:"budget_id" binding:"required"`
	SellerID string `json:"seller_id" binding:"required"`
}

type RestoreSnapshotRequest struct {
	SnapshotID string `json:"snapshot_id" binding:"required"`
}

// ProposedChangeRequest is a full candidate item list. The validate route
// scores it without mutating the session; the changes route commits it when
// the stability gate passes.
type ProposedChangeRequest struct {
	Items       []BudgetItemRequest `json:"items" binding:"required"`
	Description string              `json:"description"`
}
