package activity

type Type string

const (
	TypeUserLogin      Type = "user_login"
	TypeUserLogout     Type = "user_logout"
	TypeUserRegister   Type = "user_register"
	TypePasswordChange Type = "password_change"
	TypePasswordReset  Type = "password_reset"

	TypeUserCreate Type = "user_create"
	TypeUserUpdate Type = "user_update"
	TypeUserDelete Type = "user_delete"
	TypeRoleChange Type = "role_change"

	TypePGCreate     Type = "pg_create"
	TypePGUpdate     Type = "pg_update"
	TypePGDelete     Type = "pg_delete"
	TypeBranchCreate Type = "branch_create"
	TypeBranchUpdate Type = "branch_update"
	TypeBranchDelete Type = "branch_delete"
	TypeFloorCreate  Type = "floor_create"
	TypeFloorUpdate  Type = "floor_update"
	TypeFloorDelete  Type = "floor_delete"
	TypeRoomCreate   Type = "room_create"
	TypeRoomUpdate   Type = "room_update"
	TypeRoomDelete   Type = "room_delete"
	TypeBedAssign    Type = "bed_assign"
	TypeBedRelease   Type = "bed_release"

	TypeResidentCreate   Type = "resident_create"
	TypeResidentUpdate   Type = "resident_update"
	TypeResidentDelete   Type = "resident_delete"
	TypeResidentCheckin  Type = "resident_checkin"
	TypeResidentCheckout Type = "resident_checkout"
	TypeResidentSwitch   Type = "resident_switch"

	TypePaymentCreate  Type = "payment_create"
	TypePaymentUpdate  Type = "payment_update"
	TypePaymentApprove Type = "payment_approve"
	TypePaymentReject  Type = "payment_reject"
	TypePaymentRefund  Type = "payment_refund"

	TypeTicketCreate  Type = "ticket_create"
	TypeTicketUpdate  Type = "ticket_update"
	TypeTicketAssign  Type = "ticket_assign"
	TypeTicketResolve Type = "ticket_resolve"
	TypeTicketClose   Type = "ticket_close"
	TypeTicketReopen  Type = "ticket_reopen"

	TypeNotificationSend Type = "notification_send"
	TypeNotificationRead Type = "notification_read"

	TypeDocumentUpload Type = "document_upload"
	TypeDocumentDelete Type = "document_delete"
	TypeQRGenerate     Type = "qr_generate"
	TypeQRScan         Type = "qr_scan"
	TypeReportGenerate Type = "report_generate"
	TypeReportExport   Type = "report_export"

	TypeSettingsUpdate    Type = "settings_update"
	TypeSystemMaintenance Type = "system_maintenance"
	TypeDataExport        Type = "data_export"
	TypeDataImport        Type = "data_import"
	TypeActivityPurge     Type = "activity_purge"
)

var knownTypes = map[Type]struct{}{}

func init() {
	for _, t := range []Type{
		TypeUserLogin, TypeUserLogout, TypeUserRegister, TypePasswordChange, TypePasswordReset,
		TypeUserCreate, TypeUserUpdate, TypeUserDelete, TypeRoleChange,
		TypePGCreate, TypePGUpdate, TypePGDelete, TypeBranchCreate, TypeBranchUpdate, TypeBranchDelete,
		TypeFloorCreate, TypeFloorUpdate, TypeFloorDelete, TypeRoomCreate, TypeRoomUpdate, TypeRoomDelete,
		TypeBedAssign, TypeBedRelease,
		TypeResidentCreate, TypeResidentUpdate, TypeResidentDelete, TypeResidentCheckin, TypeResidentCheckout, TypeResidentSwitch,
		TypePaymentCreate, TypePaymentUpdate, TypePaymentApprove, TypePaymentReject, TypePaymentRefund,
		TypeTicketCreate, TypeTicketUpdate, TypeTicketAssign, TypeTicketResolve, TypeTicketClose, TypeTicketReopen,
		TypeNotificationSend, TypeNotificationRead,
		TypeDocumentUpload, TypeDocumentDelete, TypeQRGenerate, TypeQRScan, TypeReportGenerate, TypeReportExport,
		TypeSettingsUpdate, TypeSystemMaintenance, TypeDataExport, TypeDataImport, TypeActivityPurge,
	} {
		knownTypes[t] = struct{}{}
	}
}

func (t Type) Valid() bool {
	_, ok := knownTypes[t]
	return ok
}

type Category string

const (
	CategoryAuthentication Category = "authentication"
	CategoryManagement     Category = "management"
	CategoryFinancial      Category = "financial"
	CategorySupport        Category = "support"
	CategorySystem         Category = "system"
	CategoryCommunication  Category = "communication"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryAuthentication, CategoryManagement, CategoryFinancial,
		CategorySupport, CategorySystem, CategoryCommunication:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityNormal   Priority = "normal"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
	StatusPending Status = "pending"
)

func (s Status) Valid() bool {
	switch s {
	case StatusSuccess, StatusFailed, StatusPending:
		return true
	}
	return false
}

type EntityType string

const (
	EntityUser         EntityType = "user"
	EntityPG           EntityType = "pg"
	EntityResident     EntityType = "resident"
	EntityPayment      EntityType = "payment"
	EntityTicket       EntityType = "ticket"
	EntityRoom         EntityType = "room"
	EntityFloor        EntityType = "floor"
	EntityBranch       EntityType = "branch"
	EntityQR           EntityType = "qr"
	EntityReport       EntityType = "report"
	EntityNotification EntityType = "notification"
	EntityDocument     EntityType = "document"
	EntitySystem       EntityType = "system"
)

func (e EntityType) Valid() bool {
	switch e {
	case EntityUser, EntityPG, EntityResident, EntityPayment, EntityTicket, EntityRoom,
		EntityFloor, EntityBranch, EntityQR, EntityReport, EntityNotification,
		EntityDocument, EntitySystem:
		return true
	}
	return false
}
