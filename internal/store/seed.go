package store

import (
	"time"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic("store: bad seed decimal " + s)
	}
	return d
}

func ptr[T any](v T) *T { return &v }

// Seed loads the bootstrap data set: a default manager account plus demo
// staff, patients, services, stock, appointments, plans, transactions,
// consumptions and messages. Meant for fresh in-memory deployments.
func (s *Store) Seed() {
	admin := s.CreateUser(User{
		Username:    "admin",
		Password:    "admin123",
		FullName:    "System Administrator",
		Role:        RoleManager,
		PhoneNumber: "0123456789",
		Email:       "admin@example.com",
	})

	doc1 := s.CreateUser(User{
		Username: "doctor1", Password: "doctor123",
		FullName: "Dr. Ahmed Mohamed", Role: RoleDoctor,
		PhoneNumber: "0123456789", Email: "doctor1@example.com",
	})
	doc2 := s.CreateUser(User{
		Username: "doctor2", Password: "doctor123",
		FullName: "Dr. Mohamed Ali", Role: RoleDoctor,
		PhoneNumber: "0123456780", Email: "doctor2@example.com",
	})
	doc3 := s.CreateUser(User{
		Username: "doctor3", Password: "doctor123",
		FullName: "Dr. Amr Khaled", Role: RoleDoctor,
		PhoneNumber: "0123456781", Email: "doctor3@example.com",
	})
	secretary := s.CreateUser(User{
		Username: "secretary", Password: "secretary123",
		FullName: "Somaya Adel", Role: RoleSecretary,
		PhoneNumber: "0123456782", Email: "secretary@example.com",
	})
	s.CreateUser(User{
		Username: "nurse", Password: "nurse123",
		FullName: "Heba Mahmoud", Role: RoleNurse,
		PhoneNumber: "0123456783", Email: "nurse@example.com",
	})

	cleaning := s.CreateService(Service{
		Name: "Teeth cleaning", Description: "Professional dental cleaning",
		Price: dec("500"), Duration: 60, Category: "cleaning",
	})
	rootCanal := s.CreateService(Service{
		Name: "Root canal treatment", Description: "Endodontic treatment",
		Price: dec("1200"), Duration: 90, Category: "endodontics",
	})
	braces := s.CreateService(Service{
		Name: "Clear aligner fitting", Description: "Fitting of clear aligners",
		Price: dec("8000"), Duration: 120, Category: "orthodontics",
	})
	checkup := s.CreateService(Service{
		Name: "Routine checkup", Description: "Periodic dental examination",
		Price: dec("300"), Duration: 30, Category: "examination",
	})

	composite := s.CreateItem(InventoryItem{
		Name: "Composite filling", Description: "Dental filling material",
		Quantity: dec("2"), MinQuantity: 10, Unit: "pack",
		Price: dec("350"), Category: "fillings",
	})
	needles := s.CreateItem(InventoryItem{
		Name: "Anesthetic needles", Description: "Local anesthesia needles",
		Quantity: dec("15"), MinQuantity: 50, Unit: "piece",
		Price: dec("5"), Category: "anesthesia",
	})
	s.CreateItem(InventoryItem{
		Name: "Medical gloves", Description: "Latex gloves",
		Quantity: dec("3"), MinQuantity: 10, Unit: "box",
		Price: dec("120"), Category: "supplies",
	})
	s.CreateItem(InventoryItem{
		Name: "Prophy paste", Description: "Professional cleaning paste",
		Quantity: dec("8"), MinQuantity: 5, Unit: "pack",
		Price: dec("200"), Category: "cleaning",
	})

	p1 := s.CreatePatient(Patient{
		FullName: "Sara Ahmed", PhoneNumber: "0123456789",
		Email: "sara@example.com", Address: "Cairo, Maadi",
		BirthDate: ptr(time.Date(1990, 6, 12, 0, 0, 0, 0, time.UTC)),
		Notes:     "Sensitive teeth",
	})
	p2 := s.CreatePatient(Patient{
		FullName: "Mahmoud Khaled", PhoneNumber: "0123456790",
		Email: "mahmoud@example.com", Address: "Cairo, Nasr City",
		BirthDate: ptr(time.Date(1985, 9, 25, 0, 0, 0, 0, time.UTC)),
	})
	p3 := s.CreatePatient(Patient{
		FullName: "Laila Said", PhoneNumber: "0123456791",
		Email: "laila@example.com", Address: "Cairo, Zamalek",
		BirthDate: ptr(time.Date(1995, 3, 7, 0, 0, 0, 0, time.UTC)),
		Notes:     "Needs orthodontic treatment",
	})
	p4 := s.CreatePatient(Patient{
		FullName: "Karim Adel", PhoneNumber: "0123456792",
		Email: "karim@example.com", Address: "Cairo, Mohandessin",
		BirthDate: ptr(time.Date(1980, 12, 10, 0, 0, 0, 0, time.UTC)),
	})
	p5 := s.CreatePatient(Patient{
		FullName: "Noura Hussein", PhoneNumber: "0123456793",
		Email: "noura@example.com", Address: "Cairo, Heliopolis",
		BirthDate: ptr(time.Date(1992, 8, 18, 0, 0, 0, 0, time.UTC)),
	})
	p6 := s.CreatePatient(Patient{
		FullName: "Amir Samy", PhoneNumber: "0123456794",
		Email: "amir@example.com", Address: "Cairo, Maadi",
		BirthDate: ptr(time.Date(1988, 5, 22, 0, 0, 0, 0, time.UTC)),
	})
	p7 := s.CreatePatient(Patient{
		FullName: "Salma Adel", PhoneNumber: "0123456795",
		Email: "salma@example.com", Address: "Cairo, Shorouk",
		BirthDate: ptr(time.Date(1997, 10, 5, 0, 0, 0, 0, time.UTC)),
	})

	day := s.now().Truncate(24 * time.Hour)

	appt1 := s.CreateAppointment(Appointment{
		PatientID: p1.ID, DoctorID: doc2.ID, ServiceID: ptr(braces.ID),
		StartTime: day.Add(10 * time.Hour), EndTime: day.Add(12 * time.Hour),
		Status: StatusConfirmed, CreatedBy: admin.ID,
	})
	appt2 := s.CreateAppointment(Appointment{
		PatientID: p2.ID, DoctorID: doc1.ID, ServiceID: ptr(cleaning.ID),
		StartTime: day.Add(11*time.Hour + 30*time.Minute), EndTime: day.Add(12*time.Hour + 30*time.Minute),
		Status: StatusPending, CreatedBy: admin.ID,
	})
	appt3 := s.CreateAppointment(Appointment{
		PatientID: p3.ID, DoctorID: doc3.ID, ServiceID: ptr(rootCanal.ID),
		StartTime: day.Add(13 * time.Hour), EndTime: day.Add(14*time.Hour + 30*time.Minute),
		Status: StatusConfirmed, CreatedBy: admin.ID,
	})
	s.CreateAppointment(Appointment{
		PatientID: p4.ID, DoctorID: doc1.ID, ServiceID: ptr(checkup.ID),
		StartTime: day.Add(15*time.Hour + 30*time.Minute), EndTime: day.Add(16 * time.Hour),
		Status: StatusConfirmed, CreatedBy: admin.ID,
	})

	s.CreatePlan(TreatmentPlan{
		PatientID: p5.ID, DoctorID: doc1.ID,
		Title:       "Multiple caries treatment",
		Description: "Treatment of four decayed teeth",
		TotalCost:   dec("4800"),
		StartDate:   ptr(day.AddDate(0, 0, -20)), EndDate: ptr(day.AddDate(0, 0, 40)),
		Progress: 75,
	})
	s.CreatePlan(TreatmentPlan{
		PatientID: p6.ID, DoctorID: doc3.ID,
		Title:       "Aligner fitting with follow-up",
		Description: "Clear aligners with twelve follow-up sessions",
		TotalCost:   dec("15000"),
		StartDate:   ptr(day.AddDate(0, 0, -60)), EndDate: ptr(day.AddDate(0, 0, 305)),
		Progress: 100,
	})
	s.CreatePlan(TreatmentPlan{
		PatientID: p7.ID, DoctorID: doc2.ID,
		Title:       "Dental implants",
		Description: "Two implants with crowns",
		TotalCost:   dec("12000"),
		StartDate:   ptr(day.AddDate(0, 0, -30)), EndDate: ptr(day.AddDate(0, 0, 150)),
		Progress: 30,
	})

	s.CreateTransaction(FinancialTransaction{
		PatientID: ptr(p1.ID), AppointmentID: ptr(appt1.ID),
		Amount: dec("8000"), Type: "income", Category: "treatment fee",
		Description: "First installment, aligners",
		Date:        day.AddDate(0, 0, -5), CreatedBy: admin.ID,
	})
	s.CreateTransaction(FinancialTransaction{
		PatientID: ptr(p2.ID), AppointmentID: ptr(appt2.ID),
		Amount: dec("500"), Type: "income", Category: "treatment fee",
		Description: "Teeth cleaning",
		Date:        day.AddDate(0, 0, -7), CreatedBy: admin.ID,
	})
	s.CreateTransaction(FinancialTransaction{
		Amount: dec("2000"), Type: "expense", Category: "purchase",
		Description: "Consumables purchase",
		Date:        day.AddDate(0, 0, -10), CreatedBy: admin.ID,
	})

	s.RecordConsumption(InventoryConsumption{
		ItemID: composite.ID, AppointmentID: ptr(appt3.ID), PatientID: ptr(p3.ID),
		Quantity: dec("1"), UsedBy: doc3.ID, Notes: "Root canal session",
	})
	s.RecordConsumption(InventoryConsumption{
		ItemID: needles.ID, AppointmentID: ptr(appt3.ID), PatientID: ptr(p3.ID),
		Quantity: dec("2"), UsedBy: doc3.ID, Notes: "Root canal session",
	})

	s.CreateMessage(WhatsappMessage{
		PatientID: ptr(p1.ID), AppointmentID: ptr(appt1.ID),
		MessageType: MessageTypeAppointmentReminder,
		Message:     "Reminder: your appointment tomorrow at 10:00 with Dr. Mohamed Ali",
		Status:      MessageStatusSent, SentBy: secretary.ID,
	})
	s.CreateMessage(WhatsappMessage{
		PatientID:   ptr(p5.ID),
		MessageType: MessageTypeFollowup,
		Message:     "How are you feeling after your last session? Any pain or discomfort?",
		Status:      MessageStatusRead, SentBy: secretary.ID,
	})
	s.CreateMessage(WhatsappMessage{
		PatientID:   ptr(p6.ID),
		MessageType: MessageTypePaymentReminder,
		Message:     "Reminder: your installment of 2000 EGP is due on June 20",
		Status:      MessageStatusDelivered, SentBy: secretary.ID,
	})
}
