package audit

type AuditLogResponse struct {
	ID        string  `json:"id"`
	Action    string  `json:"action"`
	AdminID   string  `json:"admin_id"`
	TargetID  *string `json:"target_id,omitempty"`
	Details   *string `json:"details,omitempty"`
	CreatedAt string  `json:"created_at"`
}
