package services

import (
	"fmt"

	"CareSphere/models"

	"github.com/jung-kurt/gofpdf"
)

/*
* Render the prescription document to path
* Layout: clinic header, doctor block, patient block, diagnosis, medicine
* table, optional advice, footer
 */
func GeneratePrescriptionPDF(p *models.Prescription, patient, doctor *models.Account, path string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 10, "CareSphere Hospital", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, "Medical Prescription", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 6, "Dr. "+doctor.FullName, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	if doctor.Specialty != "" {
		pdf.CellFormat(0, 5, doctor.Specialty, "", 1, "L", false, 0, "")
	}
	if doctor.Qualification != "" {
		pdf.CellFormat(0, 5, doctor.Qualification, "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 6, "Patient", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 5, patient.FullName, "", 1, "L", false, 0, "")
	if patient.Gender != "" {
		pdf.CellFormat(0, 5, "Gender: "+patient.Gender, "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 5, "Date: "+p.IssuedAt.Format("02 Jan 2006"), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 6, "Diagnosis", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 5, p.Diagnosis, "", "L", false)
	pdf.Ln(3)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(10, 7, "#", "1", 0, "C", false, 0, "")
	pdf.CellFormat(65, 7, "Medicine", "1", 0, "L", false, 0, "")
	pdf.CellFormat(35, 7, "Dosage", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, "Frequency", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, "Duration", "1", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for i, med := range p.Medicines {
		pdf.CellFormat(10, 7, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(65, 7, med.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 7, med.Dosage, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, med.Frequency, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, med.Duration, "1", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	if p.Advice != "" {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 6, "Advice", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, p.Advice, "", "L", false)
		pdf.Ln(3)
	}

	pdf.SetFont("Arial", "I", 8)
	pdf.CellFormat(0, 5, "This prescription was generated electronically and is valid without a signature.", "", 1, "C", false, 0, "")

	return pdf.OutputFileAndClose(path)
}
