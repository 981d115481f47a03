package dashboarding

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/estate-dashboard-api/internal/domain"
)

func fixedNow() time.Time {
	return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
}

func newTestService() *Service {
	service := NewService()
	service.now = fixedNow
	return service
}

func buyerInputs() *domain.DashboardInputs {
	return &domain.DashboardInputs{
		ViewerEmail: "comprador@example.com",
		Favourites: []*domain.Favourite{
			{ID: 1, Title: "Casa na Praia", Price: 450000, CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
			{ID: 2, Title: "Apartamento Centro", Price: 320000, CreatedAt: time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)},
		},
		BuyerAppointments: []*domain.Appointment{
			{ID: 1, Status: domain.AppointmentStatusScheduled},
			{ID: 2, Status: domain.AppointmentStatusCompleted},
			{ID: 3, Status: domain.AppointmentStatusCompleted},
			{ID: 4, Status: domain.AppointmentStatusCancelled},
		},
		Versions: domain.InputVersions{Favourites: 1, BuyerAppointments: 1},
	}
}

func TestService_Metrics(t *testing.T) {
	tests := []struct {
		name     string
		role     domain.Role
		inputs   *domain.DashboardInputs
		validate func(t *testing.T, metrics []domain.MetricCard)
	}{
		{
			name:   "Buyer - favoritos, agendamentos e compras concluídas",
			role:   domain.RoleBuyer,
			inputs: buyerInputs(),
			validate: func(t *testing.T, metrics []domain.MetricCard) {
				require.Len(t, metrics, 3)

				assert.Equal(t, "Saved Properties", metrics[0].Title)
				assert.Equal(t, 2, metrics[0].Value)
				assert.Equal(t, domain.IconHeart, metrics[0].Icon)
				assert.Equal(t, "+0", metrics[0].Trend) // 2 - 10 trava em zero

				assert.Equal(t, "Appointments", metrics[1].Title)
				assert.Equal(t, 4, metrics[1].Value)
				assert.Equal(t, domain.IconCalendar, metrics[1].Icon)
				assert.Equal(t, "+1", metrics[1].Trend) // 4 - 3

				assert.Equal(t, "Purchased", metrics[2].Title)
				assert.Equal(t, 2, metrics[2].Value) // somente status "completed"
				assert.Equal(t, domain.IconHome, metrics[2].Icon)
				assert.Equal(t, "0", metrics[2].Trend)
			},
		},
		{
			name: "Seller - total, ativos aprovados e vendidos",
			role: domain.RoleSeller,
			inputs: &domain.DashboardInputs{
				OwnerProperties: []*domain.Property{
					{ID: "p1", Status: domain.PropertyStatusApproved},
					{ID: "p2", Status: domain.PropertyStatusApproved},
					{ID: "p3", Status: domain.PropertyStatusPending},
					{ID: "p4", Status: domain.PropertyStatusSold},
				},
			},
			validate: func(t *testing.T, metrics []domain.MetricCard) {
				require.Len(t, metrics, 3)

				assert.Equal(t, "Total Properties", metrics[0].Title)
				assert.Equal(t, 4, metrics[0].Value)
				assert.Equal(t, domain.IconBuilding, metrics[0].Icon)

				assert.Equal(t, "Active Listings", metrics[1].Title)
				assert.Equal(t, 2, metrics[1].Value)

				assert.Equal(t, "Sold", metrics[2].Title)
				assert.Equal(t, 1, metrics[2].Value)
				assert.Equal(t, "+1", metrics[2].Trend)
			},
		},
		{
			name: "Admin - usuários, imóveis e agências distintas",
			role: domain.RoleAdmin,
			inputs: &domain.DashboardInputs{
				AllUsers: []*domain.User{{ID: 1}, {ID: 2}, {ID: 3}},
				AllProperties: []*domain.Property{
					{ID: "p1", AgencyID: "ag-1"},
					{ID: "p2", AgencyID: "ag-2"},
					{ID: "p3", AgencyID: "ag-1"}, // duplicada, não conta duas vezes
					{ID: "p4"},                   // sem agência, ignorado
				},
			},
			validate: func(t *testing.T, metrics []domain.MetricCard) {
				require.Len(t, metrics, 3)

				assert.Equal(t, "Total Users", metrics[0].Title)
				assert.Equal(t, 3, metrics[0].Value)
				assert.Equal(t, domain.IconUsers, metrics[0].Icon)

				assert.Equal(t, "Total Properties", metrics[1].Title)
				assert.Equal(t, 4, metrics[1].Value)

				assert.Equal(t, "Active Agencies", metrics[2].Title)
				assert.Equal(t, 2, metrics[2].Value)
				assert.Equal(t, domain.IconMoney, metrics[2].Icon)
			},
		},
		{
			name: "Role desconhecido - cai no ramo de admin sem erro",
			role: domain.Role("supervisor"),
			inputs: &domain.DashboardInputs{
				AllUsers:      []*domain.User{{ID: 1}},
				AllProperties: []*domain.Property{{ID: "p1", AgencyID: "ag-1"}},
			},
			validate: func(t *testing.T, metrics []domain.MetricCard) {
				require.Len(t, metrics, 3)
				assert.Equal(t, "Total Users", metrics[0].Title)
				assert.Equal(t, 1, metrics[0].Value)
			},
		},
		{
			name:   "Coleções vazias - três cards zerados, sem pânico",
			role:   domain.RoleBuyer,
			inputs: &domain.DashboardInputs{},
			validate: func(t *testing.T, metrics []domain.MetricCard) {
				require.Len(t, metrics, 3)
				for _, card := range metrics {
					assert.Equal(t, 0, card.Value)
					assert.NotEmpty(t, card.Title)
					assert.NotEmpty(t, card.Icon)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService()

			metrics := service.Metrics(tt.role, tt.inputs)

			// Valores de cards nunca são negativos
			for _, card := range metrics {
				assert.GreaterOrEqual(t, card.Value, 0)
			}

			tt.validate(t, metrics)
		})
	}
}

func TestService_TableRows(t *testing.T) {
	tests := []struct {
		name     string
		role     domain.Role
		inputs   *domain.DashboardInputs
		validate func(t *testing.T, rows []domain.TableRow)
	}{
		{
			name:   "Buyer - favoritos com status fixo Saved",
			role:   domain.RoleBuyer,
			inputs: buyerInputs(),
			validate: func(t *testing.T, rows []domain.TableRow) {
				require.Len(t, rows, 2)

				assert.Equal(t, 1, rows[0].ID)
				assert.Equal(t, "Casa na Praia", rows[0].Name)
				assert.Equal(t, "Saved", rows[0].Status)
				assert.Equal(t, "$450,000", rows[0].Price)

				assert.Equal(t, 2, rows[1].ID)
				assert.Equal(t, "$320,000", rows[1].Price)
			},
		},
		{
			name: "Buyer - trunca em 4 linhas preservando a ordem de chegada",
			role: domain.RoleBuyer,
			inputs: &domain.DashboardInputs{
				Favourites: []*domain.Favourite{
					{Title: "A", Price: 1},
					{Title: "B", Price: 2},
					{Title: "C", Price: 3},
					{Title: "D", Price: 4},
					{Title: "E", Price: 5},
					{Title: "F", Price: 6},
				},
			},
			validate: func(t *testing.T, rows []domain.TableRow) {
				require.Len(t, rows, 4)
				assert.Equal(t, []string{"A", "B", "C", "D"},
					[]string{rows[0].Name, rows[1].Name, rows[2].Name, rows[3].Name})
			},
		},
		{
			name: "Seller - status default Pending quando o imóvel não tem status",
			role: domain.RoleSeller,
			inputs: &domain.DashboardInputs{
				OwnerProperties: []*domain.Property{
					{ID: "p1", Title: "Sobrado", Price: 275000, Status: domain.PropertyStatusApproved},
					{ID: "p2", Title: "Cobertura", Price: 890000},
				},
			},
			validate: func(t *testing.T, rows []domain.TableRow) {
				require.Len(t, rows, 2)
				assert.Equal(t, domain.PropertyStatusApproved, rows[0].Status)
				assert.Equal(t, "Pending", rows[1].Status)
				assert.Equal(t, "$890,000", rows[1].Price)
			},
		},
		{
			name: "Admin - status default Approved quando o imóvel não tem status",
			role: domain.RoleAdmin,
			inputs: &domain.DashboardInputs{
				AllProperties: []*domain.Property{
					{ID: "p1", Title: "Galpão", Price: 1200000},
				},
			},
			validate: func(t *testing.T, rows []domain.TableRow) {
				require.Len(t, rows, 1)
				assert.Equal(t, "Approved", rows[0].Status)
				assert.Equal(t, "$1,200,000", rows[0].Price)
			},
		},
		{
			name: "Fallbacks - título vazio vira Property e preço ausente vira $0",
			role: domain.RoleBuyer,
			inputs: &domain.DashboardInputs{
				Favourites: []*domain.Favourite{
					{Title: "", Price: 0},
				},
			},
			validate: func(t *testing.T, rows []domain.TableRow) {
				require.Len(t, rows, 1)
				assert.Equal(t, "Property", rows[0].Name)
				assert.Equal(t, "$0", rows[0].Price)
			},
		},
		{
			name:   "Coleção vazia - tabela vazia, sem linhas fabricadas",
			role:   domain.RoleSeller,
			inputs: &domain.DashboardInputs{},
			validate: func(t *testing.T, rows []domain.TableRow) {
				assert.Empty(t, rows)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService()

			rows := service.TableRows(tt.role, tt.inputs)

			// IDs posicionais contíguos a partir de 1
			for i, row := range rows {
				assert.Equal(t, i+1, row.ID)
			}
			assert.LessOrEqual(t, len(rows), maxTableRows)

			tt.validate(t, rows)
		})
	}
}

func TestService_Overview(t *testing.T) {
	tests := []struct {
		name        string
		role        domain.Role
		displayName string
		inputs      *domain.DashboardInputs
		validate    func(t *testing.T, overview *domain.DashboardOverview)
	}{
		{
			name:        "Buyer - cabeçalhos e tabela de favoritos",
			role:        domain.RoleBuyer,
			displayName: "Ana",
			inputs:      buyerInputs(),
			validate: func(t *testing.T, overview *domain.DashboardOverview) {
				assert.Equal(t, "My Dashboard", overview.Heading)
				assert.Equal(t, "Ana", overview.DisplayName)
				assert.Equal(t, "Buyer Member", overview.MemberLabel)
				assert.Equal(t, "Saved Properties", overview.TableHeading)
				assert.Len(t, overview.TableRows, 2)
				assert.Empty(t, overview.EmptyMessage)
				assert.Len(t, overview.Activity, activityMonths)
			},
		},
		{
			name:        "Seller sem imóveis - mensagem de estado vazio",
			role:        domain.RoleSeller,
			displayName: "Bruno",
			inputs:      &domain.DashboardInputs{},
			validate: func(t *testing.T, overview *domain.DashboardOverview) {
				assert.Equal(t, "Seller Dashboard", overview.Heading)
				assert.Equal(t, "My Properties", overview.TableHeading)
				assert.Empty(t, overview.TableRows)
				assert.Equal(t, "No properties listed yet", overview.EmptyMessage)
			},
		},
		{
			name:        "Admin sem imóveis - mensagem de estado vazio de admin",
			role:        domain.RoleAdmin,
			displayName: "Carla",
			inputs:      &domain.DashboardInputs{},
			validate: func(t *testing.T, overview *domain.DashboardOverview) {
				assert.Equal(t, "Admin Overview", overview.Heading)
				assert.Equal(t, "Recent Properties", overview.TableHeading)
				assert.Equal(t, "No properties in database", overview.EmptyMessage)
			},
		},
		{
			name:        "Nome vazio - fallback User no nome e no rótulo de membro",
			role:        domain.Role(""),
			displayName: "",
			inputs:      &domain.DashboardInputs{},
			validate: func(t *testing.T, overview *domain.DashboardOverview) {
				assert.Equal(t, "User", overview.DisplayName)
				assert.Equal(t, "User Member", overview.MemberLabel)
				// Role vazio recebe o cabeçalho default, não o de admin
				assert.Equal(t, "My Dashboard", overview.Heading)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService()

			overview := service.Overview(tt.role, tt.displayName, tt.inputs)

			require.NotNil(t, overview)
			require.Len(t, overview.Metrics, 3)
			assert.Equal(t, tt.inputs.Versions, overview.Versions)

			tt.validate(t, overview)
		})
	}
}

func TestService_Activity(t *testing.T) {
	service := newTestService()

	inputs := &domain.DashboardInputs{
		Favourites: []*domain.Favourite{
			// Dois no mês corrente, um dois meses atrás, um fora da janela
			{CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
			{CreatedAt: time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)},
			{CreatedAt: time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC)},
			{CreatedAt: time.Date(2024, 11, 5, 0, 0, 0, 0, time.UTC)},
		},
	}

	overview := service.Overview(domain.RoleBuyer, "Ana", inputs)

	require.Len(t, overview.Activity, activityMonths)

	// Janela Jan..Jun de 2025, do mais antigo para o atual
	assert.Equal(t, "Jan", overview.Activity[0].Month)
	assert.Equal(t, "Jun", overview.Activity[5].Month)

	assert.Equal(t, 0, overview.Activity[0].Value)
	assert.Equal(t, 1, overview.Activity[3].Value) // abril
	assert.Equal(t, 2, overview.Activity[5].Value) // junho
}

func TestService_Memoization(t *testing.T) {
	service := newTestService()

	inputs := buyerInputs()

	first := service.derive(domain.RoleBuyer, inputs)
	second := service.derive(domain.RoleBuyer, inputs)

	// Mesma chave (role, usuário, versões): mesmo resultado memoizado
	assert.Same(t, first, second)

	// Mudança de versão em qualquer coleção força recálculo
	bumped := buyerInputs()
	bumped.Versions.Favourites++
	third := service.derive(domain.RoleBuyer, bumped)
	assert.NotSame(t, first, third)

	// Mudança de role com as mesmas versões também força recálculo
	fourth := service.derive(domain.RoleSeller, inputs)
	assert.NotSame(t, first, fourth)

	// Usuários diferentes com as mesmas versões não compartilham entrada
	otherViewer := buyerInputs()
	otherViewer.ViewerEmail = "outro@example.com"
	fifth := service.derive(domain.RoleBuyer, otherViewer)
	assert.NotSame(t, first, fifth)
}

func TestService_MemoizationFlush(t *testing.T) {
	service := newTestService()

	// Enche o cache além do limite variando a versão de uma coleção
	for i := 0; i < maxCacheEntries+1; i++ {
		inputs := &domain.DashboardInputs{
			Versions: domain.InputVersions{Favourites: uint64(i)},
		}
		service.derive(domain.RoleBuyer, inputs)
	}

	service.mu.Lock()
	entries := len(service.cache)
	service.mu.Unlock()

	// Após o flush o cache recomeça, nunca acima do limite
	assert.LessOrEqual(t, entries, maxCacheEntries)
}

func TestService_DeterministicOverCollectionOrder(t *testing.T) {
	service := newTestService()

	createdAt := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	forward := &domain.DashboardInputs{
		BuyerAppointments: []*domain.Appointment{
			{ID: 1, Status: domain.AppointmentStatusCompleted, CreatedAt: createdAt},
			{ID: 2, Status: domain.AppointmentStatusScheduled, CreatedAt: createdAt},
			{ID: 3, Status: domain.AppointmentStatusCompleted, CreatedAt: createdAt},
		},
	}
	reversed := &domain.DashboardInputs{
		BuyerAppointments: []*domain.Appointment{
			{ID: 3, Status: domain.AppointmentStatusCompleted, CreatedAt: createdAt},
			{ID: 2, Status: domain.AppointmentStatusScheduled, CreatedAt: createdAt},
			{ID: 1, Status: domain.AppointmentStatusCompleted, CreatedAt: createdAt},
		},
		Versions: domain.InputVersions{BuyerAppointments: 99},
	}

	// Métricas são contagens: independem da ordem da coleção
	assert.Equal(t,
		service.Metrics(domain.RoleBuyer, forward),
		service.Metrics(domain.RoleBuyer, reversed),
	)
}

func randomInputs(rng *rand.Rand) *domain.DashboardInputs {
	propertyStatuses := []string{
		domain.PropertyStatusPending,
		domain.PropertyStatusApproved,
		domain.PropertyStatusSold,
		"", // sem status, a projeção aplica o default do role
	}
	appointmentStatuses := []string{
		domain.AppointmentStatusScheduled,
		domain.AppointmentStatusCompleted,
		domain.AppointmentStatusCancelled,
	}

	properties := make([]*domain.Property, rng.Intn(10))
	for i := range properties {
		properties[i] = &domain.Property{
			ID:       fmt.Sprintf("p%d", i),
			Title:    fmt.Sprintf("Imóvel %d", i),
			Price:    float64(rng.Intn(1000000)),
			Status:   propertyStatuses[rng.Intn(len(propertyStatuses))],
			AgencyID: fmt.Sprintf("ag-%d", rng.Intn(3)),
		}
	}

	favourites := make([]*domain.Favourite, rng.Intn(10))
	for i := range favourites {
		favourites[i] = &domain.Favourite{
			ID:    i + 1,
			Title: fmt.Sprintf("Favorito %d", i),
			Price: float64(rng.Intn(1000000)),
		}
	}

	appointments := make([]*domain.Appointment, rng.Intn(10))
	for i := range appointments {
		appointments[i] = &domain.Appointment{
			ID:     i + 1,
			Status: appointmentStatuses[rng.Intn(len(appointmentStatuses))],
		}
	}

	return &domain.DashboardInputs{
		ViewerEmail:       "viewer@example.com",
		Favourites:        favourites,
		AllProperties:     properties,
		OwnerProperties:   properties,
		BuyerAppointments: appointments,
		AllUsers:          make([]*domain.User, rng.Intn(10)),
	}
}

func TestService_IdempotentOverRandomizedInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	roles := []domain.Role{domain.RoleBuyer, domain.RoleSeller, domain.RoleAdmin, domain.Role("supervisor")}

	for trial := 0; trial < 25; trial++ {
		inputs := randomInputs(rng)

		for _, role := range roles {
			// Instâncias independentes: a igualdade precisa valer por valor,
			// não por identidade de cache
			first := newTestService()
			second := newTestService()

			metrics := first.Metrics(role, inputs)
			rows := first.TableRows(role, inputs)

			assert.Equal(t, metrics, second.Metrics(role, inputs))
			assert.Equal(t, rows, second.TableRows(role, inputs))
			assert.Equal(t,
				first.Overview(role, "Ana", inputs),
				second.Overview(role, "Ana", inputs),
			)

			require.Len(t, metrics, 3)
			assert.LessOrEqual(t, len(rows), maxTableRows)
			for _, card := range metrics {
				assert.GreaterOrEqual(t, card.Value, 0)
			}
		}
	}
}

func TestService_PurchasedSoldMonotonicity(t *testing.T) {
	t.Run("Purchased nunca diminui ao concluir agendamentos", func(t *testing.T) {
		inputs := &domain.DashboardInputs{}

		previous := 0
		for i := 0; i < 10; i++ {
			inputs.BuyerAppointments = append(inputs.BuyerAppointments, &domain.Appointment{
				ID:     i + 1,
				Status: domain.AppointmentStatusCompleted,
			})
			inputs.Versions.BuyerAppointments++

			metrics := newTestService().Metrics(domain.RoleBuyer, inputs)
			require.Equal(t, "Purchased", metrics[2].Title)
			assert.GreaterOrEqual(t, metrics[2].Value, previous)
			previous = metrics[2].Value
		}
	})

	t.Run("Sold nunca diminui ao vender imóveis", func(t *testing.T) {
		inputs := &domain.DashboardInputs{}

		previous := 0
		for i := 0; i < 10; i++ {
			inputs.OwnerProperties = append(inputs.OwnerProperties, &domain.Property{
				ID:     fmt.Sprintf("p%d", i),
				Status: domain.PropertyStatusSold,
			})
			inputs.Versions.OwnerProperties++

			metrics := newTestService().Metrics(domain.RoleSeller, inputs)
			require.Equal(t, "Sold", metrics[2].Title)
			assert.GreaterOrEqual(t, metrics[2].Value, previous)
			previous = metrics[2].Value
		}
	})
}

func TestService_NilInputs(t *testing.T) {
	service := newTestService()

	metrics := service.Metrics(domain.RoleAdmin, nil)
	require.Len(t, metrics, 3)
	for _, card := range metrics {
		assert.Equal(t, 0, card.Value)
	}

	rows := service.TableRows(domain.RoleAdmin, nil)
	assert.Empty(t, rows)

	overview := service.Overview(domain.RoleBuyer, "Ana", nil)
	require.NotNil(t, overview)
	assert.Equal(t, "My Dashboard", overview.Heading)
	assert.Equal(t, "No saved properties yet", overview.EmptyMessage)
	assert.Equal(t, domain.InputVersions{}, overview.Versions)
	assert.Empty(t, overview.TableRows)
}

func TestTrendOverBaseline(t *testing.T) {
	tests := []struct {
		name     string
		value    int
		baseline int
		expected string
	}{
		{name: "Acima da baseline", value: 12, baseline: 10, expected: "+2"},
		{name: "Igual à baseline", value: 10, baseline: 10, expected: "+0"},
		{name: "Abaixo da baseline trava em zero", value: 3, baseline: 10, expected: "+0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, trendOverBaseline(tt.value, tt.baseline))
		})
	}
}
