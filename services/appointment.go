package services

import (
	"context"
	"log"
	"time"

	"CareSphere/database"
	"CareSphere/models"
	"CareSphere/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var appointmentLayouts = []string{
	"2006-01-02 3:04 PM",
	"2006-01-02 15:04",
}

// CombineDateTime derives the stored timestamp from the separate date and
// time strings. Both 12-hour ("10:30 AM") and 24-hour ("10:30") times are
// accepted.
func CombineDateTime(date, timeStr string) (time.Time, error) {
	for _, layout := range appointmentLayouts {
		if t, err := time.Parse(layout, date+" "+timeStr); err == nil {
			return t, nil
		}
	}
	return time.Time{}, utils.BadRequest("invalid date or time format")
}

func validateAppointmentInput(data map[string]interface{}) error {
	for _, field := range []string{"patientId", "doctorId", "date", "time", "service"} {
		if _, err := getTrimmedString(data, field); err != nil {
			return err
		}
	}
	return nil
}

/*
* Require all five booking fields
* Derive appointmentDate from date + time and start in pending
* The appointment document alone is authoritative; participant listings are
* answered by query, so there are no back-reference arrays to maintain
 */
func CreateAppointment(ctx context.Context, data map[string]interface{}) (*models.Appointment, error) {
	if err := validateAppointmentInput(data); err != nil {
		return nil, err
	}
	date := data["date"].(string)
	timeStr := data["time"].(string)
	when, err := CombineDateTime(date, timeStr)
	if err != nil {
		return nil, err
	}
	fee, err := floatField(data, "fee", 0)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	appointment := &models.Appointment{
		PatientID:       data["patientId"].(string),
		DoctorID:        data["doctorId"].(string),
		Date:            date,
		Time:            timeStr,
		AppointmentDate: when,
		Status:          models.AppointmentPending,
		Service:         data["service"].(string),
		Fee:             fee,
		Notes:           stringOr(data, "notes", ""),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	coll := database.OpenCollection(database.AppointmentCollection)
	result, err := database.CreateOne(ctx, coll, appointment)
	if err != nil {
		log.Println("Error while inserting appointment:", err)
		return nil, utils.Internal("could not create appointment", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		appointment.ID = oid
	}
	return appointment, nil
}

/*
* Join every appointment with patient and doctor display fields
* A broken reference degrades to Unknown / No email instead of failing the
* whole listing
 */
func FetchAllAppointments(ctx context.Context) ([]models.AppointmentView, error) {
	coll := database.OpenCollection(database.AppointmentCollection)
	appointments := []models.Appointment{}
	opts := options.Find().SetSort(bson.D{{Key: "appointmentDate", Value: -1}})
	if err := database.FindAll(ctx, coll, nil, opts, &appointments); err != nil {
		log.Println("Error while listing appointments:", err)
		return nil, utils.Internal("could not list appointments", err)
	}

	accounts, err := fetchParticipants(ctx, appointments)
	if err != nil {
		return nil, err
	}
	views := make([]models.AppointmentView, 0, len(appointments))
	for _, a := range appointments {
		views = append(views, joinParticipants(a, accounts))
	}
	return views, nil
}

func fetchParticipants(ctx context.Context, appointments []models.Appointment) (map[string]models.Account, error) {
	ids := []primitive.ObjectID{}
	seen := map[string]bool{}
	for _, a := range appointments {
		for _, id := range []string{a.PatientID, a.DoctorID} {
			if seen[id] {
				continue
			}
			seen[id] = true
			if oid, err := primitive.ObjectIDFromHex(id); err == nil {
				ids = append(ids, oid)
			}
		}
	}
	byID := map[string]models.Account{}
	if len(ids) == 0 {
		return byID, nil
	}
	coll := database.OpenCollection(database.AccountCollection)
	accounts := []models.Account{}
	if err := database.FindAll(ctx, coll, bson.M{"_id": bson.M{"$in": ids}}, nil, &accounts); err != nil {
		log.Println("Error while fetching appointment participants:", err)
		return nil, utils.Internal("could not list appointments", err)
	}
	for _, acc := range accounts {
		byID[acc.ID.Hex()] = acc
	}
	return byID, nil
}

func joinParticipants(a models.Appointment, accounts map[string]models.Account) models.AppointmentView {
	view := models.AppointmentView{
		Appointment:      a,
		PatientName:      "Unknown",
		PatientEmail:     "No email",
		DoctorName:       "Unknown",
		DoctorEmail:      "No email",
		DoctorDepartment: "Unknown",
	}
	if patient, ok := accounts[a.PatientID]; ok {
		view.PatientName = patient.FullName
		view.PatientEmail = patient.Email
		view.PatientPhone = patient.Phone
	}
	if doctor, ok := accounts[a.DoctorID]; ok {
		view.DoctorName = doctor.FullName
		view.DoctorEmail = doctor.Email
		if doctor.Department != "" {
			view.DoctorDepartment = doctor.Department
		} else if doctor.Specialty != "" {
			view.DoctorDepartment = doctor.Specialty
		}
	}
	return view
}

// FetchAppointmentsByParticipant returns appointments where the id matches
// either side. An id matching nothing yields an empty list, not an error.
func FetchAppointmentsByParticipant(ctx context.Context, id string) ([]models.Appointment, error) {
	coll := database.OpenCollection(database.AppointmentCollection)
	appointments := []models.Appointment{}
	filter := bson.M{"$or": []bson.M{{"patientId": id}, {"doctorId": id}}}
	opts := options.Find().SetSort(bson.D{{Key: "appointmentDate", Value: -1}})
	if err := database.FindAll(ctx, coll, filter, opts, &appointments); err != nil {
		log.Println("Error while fetching appointments by participant:", err)
		return nil, utils.Internal("could not fetch appointments", err)
	}
	return appointments, nil
}

/*
* Build the $set document for a partial appointment update
* Supplying only time recomputes appointmentDate with the stored date and
* vice versa; supplying neither leaves appointmentDate untouched
 */
func BuildAppointmentUpdate(stored *models.Appointment, data map[string]interface{}) (bson.M, error) {
	set := bson.M{}

	for _, field := range []string{"service", "notes", "diagnosis", "prescription"} {
		if err := trimIfExists(data, field); err != nil {
			return nil, err
		}
		if v, ok := data[field].(string); ok {
			set[field] = v
		}
	}
	if err := trimIfExists(data, "status"); err != nil {
		return nil, err
	}
	if v, ok := data["status"].(string); ok {
		if !models.ValidAppointmentStatus(v) {
			return nil, utils.BadRequest("unknown status: " + v)
		}
		set["status"] = v
	}
	if _, ok := data["fee"]; ok {
		fee, err := floatField(data, "fee", stored.Fee)
		if err != nil {
			return nil, err
		}
		set["fee"] = fee
	}

	date := stored.Date
	timeStr := stored.Time
	dateChanged := false
	if err := trimIfExists(data, "date"); err != nil {
		return nil, err
	}
	if v, ok := data["date"].(string); ok {
		date = v
		set["date"] = v
		dateChanged = true
	}
	if err := trimIfExists(data, "time"); err != nil {
		return nil, err
	}
	if v, ok := data["time"].(string); ok {
		timeStr = v
		set["time"] = v
		dateChanged = true
	}
	if dateChanged {
		when, err := CombineDateTime(date, timeStr)
		if err != nil {
			return nil, err
		}
		set["appointmentDate"] = when
	}

	if len(set) == 0 {
		return nil, utils.BadRequest("no updatable fields supplied")
	}
	set["updatedAt"] = time.Now()
	return set, nil
}

func UpdateAppointment(ctx context.Context, id string, data map[string]interface{}) (*models.Appointment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.BadRequest("invalid appointment id")
	}
	coll := database.OpenCollection(database.AppointmentCollection)
	stored := models.Appointment{}
	if err := database.FindOne(ctx, coll, bson.M{"_id": oid}, &stored); err != nil {
		return nil, utils.NotFound("appointment not found")
	}
	set, err := BuildAppointmentUpdate(&stored, data)
	if err != nil {
		return nil, err
	}
	if _, err := database.UpdateOne(ctx, coll, bson.M{"_id": oid}, bson.M{"$set": set}); err != nil {
		log.Println("Error while updating appointment:", err)
		return nil, utils.Internal("could not update appointment", err)
	}
	updated := models.Appointment{}
	if err := database.FindOne(ctx, coll, bson.M{"_id": oid}, &updated); err != nil {
		log.Println("Error while reloading appointment:", err)
		return nil, utils.Internal("could not update appointment", err)
	}
	return &updated, nil
}

func DeleteAppointment(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.BadRequest("invalid appointment id")
	}
	coll := database.OpenCollection(database.AppointmentCollection)
	result, err := database.DeleteOne(ctx, coll, bson.M{"_id": oid})
	if err != nil {
		log.Println("Error while deleting appointment:", err)
		return utils.Internal("could not delete appointment", err)
	}
	if result.DeletedCount == 0 {
		return utils.NotFound("appointment not found")
	}
	return nil
}
