package dto

type CreateBookingRequest struct {
	Name                   string `json:"name"`
	Email                  string `json:"email"`
	Phone                  string `json:"phone"`
	Address                string `json:"address"`
	Model                  string `json:"model"`
	Color                  string `json:"color"`
	Variant                string `json:"variant"`
	AdditionalRequirements string `json:"additionalRequirements"`
}

type UpdateBookingStatusRequest struct {
	Status     string `json:"status"`
	SalesNotes string `json:"salesNotes"`
	AssignedTo string `json:"assignedTo"`
}

type CreateTestDriveRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
	VehicleModel  string `json:"vehicleModel"`
	Message       string `json:"message"`
}

type UpdateTestDriveStatusRequest struct {
	Status string `json:"status"`
}
