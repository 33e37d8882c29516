package services

import (
	"context"
	"log"
	"time"

	"CareSphere/database"
	"CareSphere/models"
	"CareSphere/utils"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	RangeWeek  = "week"
	RangeMonth = "month"
	RangeYear  = "year"
)

// ReportWindow computes the [start, end) window for a dateRange selector.
// Unknown selectors fall back to week, matching the dashboard default.
func ReportWindow(now time.Time, dateRange string) (time.Time, time.Time) {
	end := now
	switch dateRange {
	case RangeMonth:
		return end.AddDate(0, -1, 0), end
	case RangeYear:
		return end.AddDate(-1, 0, 0), end
	default:
		return end.AddDate(0, 0, -7), end
	}
}

// ShapeReport wraps aggregation rows in the response contract: an empty
// result is reported as noData instead of being padded with sample rows.
func ShapeReport(rows []bson.M) map[string]interface{} {
	if len(rows) == 0 {
		return map[string]interface{}{
			"noData": true,
			"data":   []bson.M{},
		}
	}
	return map[string]interface{}{
		"noData": false,
		"data":   rows,
	}
}

/*
* Entity counts plus revenue inside the window
* Counts are plain CountDocuments; revenue sums completed appointment fees
 */
func Overview(ctx context.Context, dateRange string) (map[string]interface{}, error) {
	start, end := ReportWindow(time.Now(), dateRange)
	window := bson.M{"$gte": start, "$lt": end}

	appointments, err := database.OpenCollection(database.AppointmentCollection).
		CountDocuments(ctx, bson.M{"appointmentDate": window})
	if err != nil {
		log.Println("Error while counting appointments:", err)
		return nil, utils.Internal("could not build overview", err)
	}
	doctors, err := database.OpenCollection(database.AccountCollection).
		CountDocuments(ctx, bson.M{"role": models.RoleDoctor})
	if err != nil {
		log.Println("Error while counting doctors:", err)
		return nil, utils.Internal("could not build overview", err)
	}
	patients, err := database.OpenCollection(database.AccountCollection).
		CountDocuments(ctx, bson.M{"role": models.RolePatient})
	if err != nil {
		log.Println("Error while counting patients:", err)
		return nil, utils.Internal("could not build overview", err)
	}
	prescriptions, err := database.OpenCollection(database.PrescriptionCollection).
		CountDocuments(ctx, bson.M{"issuedAt": window})
	if err != nil {
		log.Println("Error while counting prescriptions:", err)
		return nil, utils.Internal("could not build overview", err)
	}

	revenueRows, err := database.Aggregate(ctx, database.OpenCollection(database.AppointmentCollection), []bson.M{
		{"$match": bson.M{"status": models.AppointmentCompleted, "appointmentDate": window}},
		{"$group": bson.M{"_id": nil, "revenue": bson.M{"$sum": "$fee"}}},
	})
	if err != nil {
		log.Println("Error while aggregating revenue:", err)
		return nil, utils.Internal("could not build overview", err)
	}
	revenue := 0.0
	if len(revenueRows) > 0 {
		if v, ok := revenueRows[0]["revenue"].(float64); ok {
			revenue = v
		}
	}

	return map[string]interface{}{
		"noData":        appointments == 0 && doctors == 0 && patients == 0 && prescriptions == 0,
		"appointments":  appointments,
		"doctors":       doctors,
		"patients":      patients,
		"prescriptions": prescriptions,
		"revenue":       revenue,
		"dateRange":     normalizeRange(dateRange),
	}, nil
}

// AppointmentsByDay buckets appointment counts per calendar day inside the
// window.
func AppointmentsByDay(ctx context.Context, dateRange string) (map[string]interface{}, error) {
	start, end := ReportWindow(time.Now(), dateRange)
	rows, err := database.Aggregate(ctx, database.OpenCollection(database.AppointmentCollection), []bson.M{
		{"$match": bson.M{"appointmentDate": bson.M{"$gte": start, "$lt": end}}},
		{"$group": bson.M{
			"_id":   bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$appointmentDate"}},
			"count": bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"_id": 1}},
	})
	if err != nil {
		log.Println("Error while aggregating appointments by day:", err)
		return nil, utils.Internal("could not build appointment report", err)
	}
	return ShapeReport(rows), nil
}

// DoctorsBySpecialty groups the doctor roster by specialty; doctors without
// one land in a General bucket.
func DoctorsBySpecialty(ctx context.Context) (map[string]interface{}, error) {
	rows, err := database.Aggregate(ctx, database.OpenCollection(database.AccountCollection), []bson.M{
		{"$match": bson.M{"role": models.RoleDoctor}},
		{"$group": bson.M{
			"_id":   bson.M{"$ifNull": []interface{}{"$specialty", "General"}},
			"count": bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"count": -1}},
	})
	if err != nil {
		log.Println("Error while aggregating doctors by specialty:", err)
		return nil, utils.Internal("could not build doctor report", err)
	}
	return ShapeReport(rows), nil
}

// RevenueByMonth sums completed appointment fees per month inside the window.
func RevenueByMonth(ctx context.Context, dateRange string) (map[string]interface{}, error) {
	start, end := ReportWindow(time.Now(), dateRange)
	rows, err := database.Aggregate(ctx, database.OpenCollection(database.AppointmentCollection), []bson.M{
		{"$match": bson.M{
			"status":          models.AppointmentCompleted,
			"appointmentDate": bson.M{"$gte": start, "$lt": end},
		}},
		{"$group": bson.M{
			"_id":     bson.M{"$dateToString": bson.M{"format": "%Y-%m", "date": "$appointmentDate"}},
			"revenue": bson.M{"$sum": "$fee"},
		}},
		{"$sort": bson.M{"_id": 1}},
	})
	if err != nil {
		log.Println("Error while aggregating revenue by month:", err)
		return nil, utils.Internal("could not build revenue report", err)
	}
	return ShapeReport(rows), nil
}

func normalizeRange(dateRange string) string {
	switch dateRange {
	case RangeMonth, RangeYear:
		return dateRange
	}
	return RangeWeek
}
