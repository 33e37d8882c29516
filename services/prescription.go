package services

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"CareSphere/database"
	"CareSphere/models"
	"CareSphere/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const prescriptionCreatedSoftFail = "created but email could not be sent"

// ParseMedicines validates the medicines payload; every entry needs name,
// dosage, frequency and duration.
func ParseMedicines(raw interface{}) ([]models.Medicine, error) {
	entries, ok := raw.([]interface{})
	if !ok || len(entries) == 0 {
		return nil, utils.BadRequest("medicines must be a non-empty array")
	}
	medicines := make([]models.Medicine, 0, len(entries))
	for _, e := range entries {
		entry, ok := e.(map[string]interface{})
		if !ok {
			return nil, utils.BadRequest("invalid medicine entry")
		}
		med := models.Medicine{}
		for _, field := range []string{"name", "dosage", "frequency", "duration"} {
			if _, err := getTrimmedString(entry, field); err != nil {
				return nil, utils.BadRequest("medicine " + field + " is required")
			}
		}
		med.Name = entry["name"].(string)
		med.Dosage = entry["dosage"].(string)
		med.Frequency = entry["frequency"].(string)
		med.Duration = entry["duration"].(string)
		medicines = append(medicines, med)
	}
	return medicines, nil
}

/*
* Validate everything before any database write
* Insert the prescription first so it survives downstream failures
* Resolve patient and doctor; a lookup failure marks the record failed
* Render the PDF, mail it, and record the delivery outcome on the document
* PDF or mail failure is a soft failure: the caller still gets the record
 */
func CreatePrescription(ctx context.Context, data map[string]interface{}) (*models.Prescription, string, error) {
	patientID, err := getTrimmedString(data, "patientId")
	if err != nil {
		return nil, "", err
	}
	doctorID, err := getTrimmedString(data, "doctorId")
	if err != nil {
		return nil, "", err
	}
	diagnosis, err := getTrimmedString(data, "diagnosis")
	if err != nil {
		return nil, "", err
	}
	rawMedicines, ok := data["medicines"]
	if !ok {
		return nil, "", utils.BadRequest("medicines is required")
	}
	medicines, err := ParseMedicines(rawMedicines)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	prescription := &models.Prescription{
		PatientID:      patientID,
		DoctorID:       doctorID,
		Diagnosis:      diagnosis,
		Medicines:      medicines,
		Advice:         stringOr(data, "advice", ""),
		IssuedAt:       now,
		DeliveryStatus: models.DeliveryPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	coll := database.OpenCollection(database.PrescriptionCollection)
	result, err := database.CreateOne(ctx, coll, prescription)
	if err != nil {
		log.Println("Error while inserting prescription:", err)
		return nil, "", utils.Internal("could not create prescription", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		prescription.ID = oid
	}

	// A lookup problem leaves the record marked failed so the daily
	// drain picks it up; only a genuine miss is reported as NotFound.
	patient, err := FetchAccountByID(ctx, patientID)
	if err != nil {
		markDelivery(ctx, prescription, models.DeliveryFailed, err)
		if utils.StatusOf(err) == http.StatusNotFound {
			return prescription, "", utils.NotFound("patient not found")
		}
		return prescription, "", err
	}
	doctor, err := FetchAccountByID(ctx, doctorID)
	if err != nil {
		markDelivery(ctx, prescription, models.DeliveryFailed, err)
		if utils.StatusOf(err) == http.StatusNotFound {
			return prescription, "", utils.NotFound("doctor not found")
		}
		return prescription, "", err
	}

	if err := DeliverPrescription(ctx, prescription, patient, doctor); err != nil {
		log.Println("Prescription delivery failed:", err)
		markDelivery(ctx, prescription, models.DeliveryFailed, err)
		return prescription, prescriptionCreatedSoftFail, nil
	}
	markDelivery(ctx, prescription, models.DeliverySent, nil)
	return prescription, "created successfully", nil
}

/*
* Render to a temp file and mail it as an attachment
* The temp file is removed on every exit path
 */
func DeliverPrescription(ctx context.Context, p *models.Prescription, patient, doctor *models.Account) error {
	tmp, err := os.CreateTemp("", "prescription-*.pdf")
	if err != nil {
		return err
	}
	path := tmp.Name()
	tmp.Close()
	defer func() {
		if err := os.Remove(path); err != nil {
			log.Println("Error while removing temp prescription file:", err)
		}
	}()

	if err := GeneratePrescriptionPDF(p, patient, doctor, path); err != nil {
		return err
	}
	return mailer.Send(ctx, Mail{
		To:          patient.Email,
		Subject:     "Your prescription from Dr. " + doctor.FullName,
		Body:        "Dear " + patient.FullName + ",\n\nPlease find your prescription attached.\n\nStay healthy,\nCareSphere Hospital",
		Attachments: []string{path},
	})
}

func markDelivery(ctx context.Context, p *models.Prescription, status string, cause error) {
	set := bson.M{
		"deliveryStatus": status,
		"updatedAt":      time.Now(),
	}
	if status == models.DeliverySent {
		now := time.Now()
		set["deliveredAt"] = now
		set["deliveryError"] = ""
		p.DeliveredAt = &now
		p.DeliveryError = ""
	} else if cause != nil {
		set["deliveryError"] = cause.Error()
		p.DeliveryError = cause.Error()
	}
	p.DeliveryStatus = status
	coll := database.OpenCollection(database.PrescriptionCollection)
	if _, err := database.UpdateOne(ctx, coll, bson.M{"_id": p.ID}, bson.M{"$set": set}); err != nil {
		log.Println("Error while recording delivery status:", err)
	}
}

func FetchPrescriptionsByPatient(ctx context.Context, patientID string) ([]models.Prescription, error) {
	return fetchPrescriptions(ctx, bson.M{"patientId": patientID})
}

func FetchPrescriptionsByDoctor(ctx context.Context, doctorID string) ([]models.Prescription, error) {
	return fetchPrescriptions(ctx, bson.M{"doctorId": doctorID})
}

func fetchPrescriptions(ctx context.Context, filter bson.M) ([]models.Prescription, error) {
	coll := database.OpenCollection(database.PrescriptionCollection)
	prescriptions := []models.Prescription{}
	opts := options.Find().SetSort(bson.D{{Key: "issuedAt", Value: -1}})
	if err := database.FindAll(ctx, coll, filter, opts, &prescriptions); err != nil {
		log.Println("Error while listing prescriptions:", err)
		return nil, utils.Internal("could not list prescriptions", err)
	}
	return prescriptions, nil
}

/*
* Outbox drain: retry every failed delivery once per run
* A delivery that fails again keeps status failed with the fresh error
 */
func RetryFailedDeliveries(ctx context.Context) {
	coll := database.OpenCollection(database.PrescriptionCollection)
	pending := []models.Prescription{}
	if err := database.FindAll(ctx, coll, bson.M{"deliveryStatus": models.DeliveryFailed}, nil, &pending); err != nil {
		log.Println("Error while scanning failed deliveries:", err)
		return
	}
	for i := range pending {
		p := &pending[i]
		patient, err := FetchAccountByID(ctx, p.PatientID)
		if err != nil {
			log.Println("Skipping delivery retry, patient missing:", p.ID.Hex())
			continue
		}
		doctor, err := FetchAccountByID(ctx, p.DoctorID)
		if err != nil {
			log.Println("Skipping delivery retry, doctor missing:", p.ID.Hex())
			continue
		}
		if err := DeliverPrescription(ctx, p, patient, doctor); err != nil {
			log.Println("Delivery retry failed for", p.ID.Hex(), ":", err)
			markDelivery(ctx, p, models.DeliveryFailed, err)
			continue
		}
		markDelivery(ctx, p, models.DeliverySent, nil)
		log.Println("Delivery retry succeeded for", p.ID.Hex())
	}
}
