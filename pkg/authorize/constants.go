package authorize

type Action string
type Resource string
type Role string

const (
	ActionRead   Action = "read"
	ActionList   Action = "list"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionSend   Action = "send"

	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionRead: {}, ActionList: {}, ActionCreate: {}, ActionUpdate: {}, ActionSend: {},
}

const (
	ResourceUser          Resource = "user"
	ResourcePatient       Resource = "patient"
	ResourceService       Resource = "service"
	ResourceInventory     Resource = "inventory"
	ResourceConsumption   Resource = "consumption"
	ResourceAppointment   Resource = "appointment"
	ResourceTreatmentPlan Resource = "treatment_plan"
	ResourceFinance       Resource = "finance"
	ResourceWhatsApp      Resource = "whatsapp"
	ResourceAnalytics     Resource = "analytics"
)

var KnownResources = map[Resource]struct{}{
	ResourceUser: {}, ResourcePatient: {}, ResourceService: {},
	ResourceInventory: {}, ResourceConsumption: {}, ResourceAppointment: {},
	ResourceTreatmentPlan: {}, ResourceFinance: {}, ResourceWhatsApp: {},
	ResourceAnalytics: {},
}

const (
	RoleManager   Role = "manager"
	RoleDoctor    Role = "doctor"
	RoleSecretary Role = "secretary"
	RoleNurse     Role = "nurse"
)

var KnownRoles = map[Role]struct{}{
	RoleManager: {}, RoleDoctor: {}, RoleSecretary: {}, RoleNurse: {},
}
