// Package scheduler contém o armazenamento de snapshots das coleções do
// dashboard e o serviço que as atualiza em cadências independentes
package scheduler

import (
	"reflect"
	"sync"

	"github.com/vfg2006/estate-dashboard-api/internal/domain"
)

// SnapshotStore guarda a última cópia conhecida de cada coleção consumida
// pelo dashboard, com um número de versão por coleção. Cada fonte atualiza
// apenas a sua coleção, na sua própria cadência; uma coleção ainda não
// carregada se comporta como vazia (versão 0).
//
// A versão só avança quando o conteúdo realmente muda, então um tick de
// atualização que não trouxe dados novos não invalida a memoização do
// agregador.
type SnapshotStore struct {
	mu sync.RWMutex

	properties        []*domain.Property
	propertiesVersion uint64

	users        []*domain.User
	usersVersion uint64

	favourites        []*domain.Favourite
	favouritesVersion uint64

	appointments        []*domain.Appointment
	appointmentsVersion uint64
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{
		properties:   make([]*domain.Property, 0),
		users:        make([]*domain.User, 0),
		favourites:   make([]*domain.Favourite, 0),
		appointments: make([]*domain.Appointment, 0),
	}
}

// SetProperties substitui o snapshot do catálogo de imóveis
func (s *SnapshotStore) SetProperties(properties []*domain.Property) {
	if properties == nil {
		properties = make([]*domain.Property, 0)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if reflect.DeepEqual(s.properties, properties) {
		return
	}

	s.properties = properties
	s.propertiesVersion++
}

// SetUsers substitui o snapshot de usuários
func (s *SnapshotStore) SetUsers(users []*domain.User) {
	if users == nil {
		users = make([]*domain.User, 0)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if reflect.DeepEqual(s.users, users) {
		return
	}

	s.users = users
	s.usersVersion++
}

// SetFavourites substitui o snapshot de favoritos
func (s *SnapshotStore) SetFavourites(favourites []*domain.Favourite) {
	if favourites == nil {
		favourites = make([]*domain.Favourite, 0)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if reflect.DeepEqual(s.favourites, favourites) {
		return
	}

	s.favourites = favourites
	s.favouritesVersion++
}

// SetAppointments substitui o snapshot de agendamentos
func (s *SnapshotStore) SetAppointments(appointments []*domain.Appointment) {
	if appointments == nil {
		appointments = make([]*domain.Appointment, 0)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if reflect.DeepEqual(s.appointments, appointments) {
		return
	}

	s.appointments = appointments
	s.appointmentsVersion++
}

// Versions retorna a versão atual de cada coleção subjacente
func (s *SnapshotStore) Versions() domain.InputVersions {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.versionsLocked()
}

func (s *SnapshotStore) versionsLocked() domain.InputVersions {
	return domain.InputVersions{
		Favourites:        s.favouritesVersion,
		AllProperties:     s.propertiesVersion,
		AllUsers:          s.usersVersion,
		OwnerProperties:   s.propertiesVersion,
		BuyerAppointments: s.appointmentsVersion,
	}
}

// InputsFor monta as cinco coleções de entrada do agregador recortadas para
// o usuário informado: favoritos e agendamentos do próprio usuário, imóveis
// do próprio usuário como proprietário, e as coleções completas de imóveis
// e usuários. As versões acompanham a coleção subjacente, então o recorte
// por usuário não gera recomputação própria.
func (s *SnapshotStore) InputsFor(email string) *domain.DashboardInputs {
	s.mu.RLock()
	defer s.mu.RUnlock()

	favourites := make([]*domain.Favourite, 0)
	for _, favourite := range s.favourites {
		if favourite.UserEmail == email {
			favourites = append(favourites, favourite)
		}
	}

	ownerProperties := make([]*domain.Property, 0)
	for _, property := range s.properties {
		if property.OwnerEmail == email {
			ownerProperties = append(ownerProperties, property)
		}
	}

	appointments := make([]*domain.Appointment, 0)
	for _, appointment := range s.appointments {
		if appointment.BuyerEmail == email {
			appointments = append(appointments, appointment)
		}
	}

	return &domain.DashboardInputs{
		ViewerEmail:       email,
		Favourites:        favourites,
		AllProperties:     s.properties,
		AllUsers:          s.users,
		OwnerProperties:   ownerProperties,
		BuyerAppointments: appointments,
		Versions:          s.versionsLocked(),
	}
}
