package service

import (
	"github.com/MKhiriev/go-recovery-companion/internal/adapter"
	"github.com/MKhiriev/go-recovery-companion/internal/logger"
	"github.com/MKhiriev/go-recovery-companion/internal/store"
)

type ClientServices struct {
	AuthService     ClientAuthService
	PatientService  ClientPatientService
	TokenRefreshJob ClientTokenRefreshJob
}

func NewClientServices(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:     NewClientAuthService(sessions, serverAdapter, logger),
		PatientService:  NewClientPatientService(serverAdapter),
		TokenRefreshJob: NewClientTokenRefreshJob(serverAdapter, logger),
	}
}
