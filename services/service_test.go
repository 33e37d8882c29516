package services

import (
	"context"
	"net/http"
	"testing"

	"CareSphere/database"
	"CareSphere/models"
	"CareSphere/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// The mock deployment answers one queued response per command, which lets
// these tests walk the full service path without a running mongod.

func mockDeployment(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func accountDoc(id primitive.ObjectID, role, name, email string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "fullName", Value: name},
		{Key: "email", Value: email},
		{Key: "password", Value: "$2a$10$notarealhash"},
		{Key: "role", Value: role},
	}
}

func signupPayload() map[string]interface{} {
	return map[string]interface{}{
		"fullName": "Asha Rao",
		"email":    "asha.rao@example.com",
		"password": "sup3rsecret",
		"role":     models.RolePatient,
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	mt := mockDeployment(t)

	mt.Run("existing account blocks the signup", func(mt *mtest.T) {
		database.UseDatabase(mt.DB)
		ns := mt.DB.Name() + "." + database.AccountCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			accountDoc(primitive.NewObjectID(), models.RolePatient, "Asha Rao", "asha.rao@example.com")))

		account, err := Signup(context.Background(), signupPayload())
		require.Error(mt, err)
		assert.Nil(mt, account)
		assert.Equal(mt, http.StatusConflict, utils.StatusOf(err))
		for _, evt := range mt.GetAllStartedEvents() {
			assert.NotEqual(mt, "insert", evt.CommandName, "the second account must not be persisted")
		}
	})

	mt.Run("unique index wins the race", func(mt *mtest.T) {
		database.UseDatabase(mt.DB)
		ns := mt.DB.Name() + "." + database.AccountCollection
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{
				Index:   0,
				Code:    11000,
				Message: "E11000 duplicate key error",
			}),
		)

		account, err := Signup(context.Background(), signupPayload())
		require.Error(mt, err)
		assert.Nil(mt, account)
		assert.Equal(mt, http.StatusConflict, utils.StatusOf(err))
	})
}

func TestDeleteAppointmentUnknownID(t *testing.T) {
	mt := mockDeployment(t)

	mt.Run("zero deletions is a not found", func(mt *mtest.T) {
		database.UseDatabase(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := DeleteAppointment(context.Background(), primitive.NewObjectID().Hex())
		require.Error(mt, err)
		assert.Equal(mt, http.StatusNotFound, utils.StatusOf(err))
	})
}

func TestCreatePrescriptionMailerDisabled(t *testing.T) {
	mt := mockDeployment(t)

	mt.Run("record survives the failed delivery", func(mt *mtest.T) {
		database.UseDatabase(mt.DB)
		old := mailer
		mailer = disabledMailer{}
		defer func() { mailer = old }()

		patientID := primitive.NewObjectID()
		doctorID := primitive.NewObjectID()
		accountsNS := mt.DB.Name() + "." + database.AccountCollection
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, accountsNS, mtest.FirstBatch,
				accountDoc(patientID, models.RolePatient, "Asha Rao", "asha.rao@example.com")),
			mtest.CreateCursorResponse(0, accountsNS, mtest.FirstBatch,
				accountDoc(doctorID, models.RoleDoctor, "Meera Iyer", "meera.iyer@example.com")),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
		)

		prescription, message, err := CreatePrescription(context.Background(), map[string]interface{}{
			"patientId": patientID.Hex(),
			"doctorId":  doctorID.Hex(),
			"diagnosis": "Seasonal flu",
			"medicines": validMedicines(),
		})
		require.NoError(mt, err)
		require.NotNil(mt, prescription)
		assert.Equal(mt, "created but email could not be sent", message)
		assert.Equal(mt, models.DeliveryFailed, prescription.DeliveryStatus)
		assert.Contains(mt, prescription.DeliveryError, "not configured")

		prescriptionsNS := mt.DB.Name() + "." + database.PrescriptionCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, prescriptionsNS, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: prescription.ID},
			{Key: "patientId", Value: patientID.Hex()},
			{Key: "doctorId", Value: doctorID.Hex()},
			{Key: "diagnosis", Value: "Seasonal flu"},
			{Key: "deliveryStatus", Value: models.DeliveryFailed},
		}))
		stored, err := FetchPrescriptionsByPatient(context.Background(), patientID.Hex())
		require.NoError(mt, err)
		require.Len(mt, stored, 1)
		assert.Equal(mt, models.DeliveryFailed, stored[0].DeliveryStatus)
	})
}

func TestCreatePrescriptionPatientMissing(t *testing.T) {
	mt := mockDeployment(t)

	mt.Run("lookup miss marks the record failed", func(mt *mtest.T) {
		database.UseDatabase(mt.DB)
		accountsNS := mt.DB.Name() + "." + database.AccountCollection
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, accountsNS, mtest.FirstBatch),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
		)

		prescription, _, err := CreatePrescription(context.Background(), map[string]interface{}{
			"patientId": primitive.NewObjectID().Hex(),
			"doctorId":  primitive.NewObjectID().Hex(),
			"diagnosis": "Seasonal flu",
			"medicines": validMedicines(),
		})
		require.Error(mt, err)
		assert.Equal(mt, http.StatusNotFound, utils.StatusOf(err))
		require.NotNil(mt, prescription)
		assert.Equal(mt, models.DeliveryFailed, prescription.DeliveryStatus,
			"the retry job only scans failed deliveries")

		sawUpdate := false
		for _, evt := range mt.GetAllStartedEvents() {
			if evt.CommandName == "update" {
				sawUpdate = true
			}
		}
		assert.True(mt, sawUpdate, "the failed status must reach the store")
	})
}
