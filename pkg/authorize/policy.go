package authorize

// Permission is one p row: role, resource, action.
type Permission struct {
	Role   Role
	Object Resource
	Action Action
}

// defaultPolicies is the clinic's role grid. Routes without an entry
// here are open to any authenticated user and skip enforcement
// entirely, so only restricted operations appear.
//
// Note that managers are deliberately absent from consumption
// recording: usage is logged by the clinical staff who did the work.
var defaultPolicies = []Permission{
	{RoleManager, ResourceUser, ActionList},
	{RoleManager, ResourceUser, ActionCreate},

	{RoleManager, ResourceService, ActionCreate},
	{RoleManager, ResourceService, ActionUpdate},

	{RoleManager, ResourceInventory, ActionCreate},
	{RoleSecretary, ResourceInventory, ActionCreate},
	{RoleManager, ResourceInventory, ActionUpdate},
	{RoleSecretary, ResourceInventory, ActionUpdate},

	{RoleDoctor, ResourceConsumption, ActionCreate},
	{RoleNurse, ResourceConsumption, ActionCreate},

	{RoleManager, ResourceTreatmentPlan, ActionCreate},
	{RoleDoctor, ResourceTreatmentPlan, ActionCreate},
	{RoleManager, ResourceTreatmentPlan, ActionUpdate},
	{RoleDoctor, ResourceTreatmentPlan, ActionUpdate},

	{RoleManager, ResourceFinance, ActionRead},
	{RoleSecretary, ResourceFinance, ActionRead},
	{RoleManager, ResourceFinance, ActionCreate},
	{RoleSecretary, ResourceFinance, ActionCreate},

	{RoleManager, ResourceWhatsApp, ActionRead},
	{RoleSecretary, ResourceWhatsApp, ActionRead},
	{RoleManager, ResourceWhatsApp, ActionSend},
	{RoleSecretary, ResourceWhatsApp, ActionSend},

	{RoleManager, ResourceAnalytics, ActionRead},
}
