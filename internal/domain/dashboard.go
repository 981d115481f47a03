package domain

// Identificadores opacos dos ícones exibidos nos cards de métricas.
// O frontend resolve o componente visual a partir do handle.
const (
	IconHeart    = "heart"
	IconCalendar = "calendar"
	IconHome     = "home"
	IconBuilding = "building"
	IconUsers    = "users"
	IconMoney    = "money"
)

// MetricCard é um card de resumo do dashboard: sempre 3 por role,
// em ordem fixa por role, com valor inteiro não-negativo.
type MetricCard struct {
	Title string `json:"title"`
	Value int    `json:"value"`
	Icon  string `json:"icon"`
	Trend string `json:"trend"`
}

// TableRow é uma linha da tabela de itens recentes do dashboard.
// IDs são posicionais (1..n) dentro da lista truncada.
type TableRow struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
	Price  string `json:"price"`
}

// ActivityPoint é um ponto da série mensal exibida nos gráficos
type ActivityPoint struct {
	Month string `json:"month"`
	Value int    `json:"value"`
}

// InputVersions carrega a versão (geração) de cada coleção no momento do
// snapshot. A versão de uma coleção muda apenas quando a fonte correspondente
// é atualizada, e é a base da chave de memoização do agregador.
type InputVersions struct {
	Favourites        uint64 `json:"favourites"`
	AllProperties     uint64 `json:"all_properties"`
	AllUsers          uint64 `json:"all_users"`
	OwnerProperties   uint64 `json:"owner_properties"`
	BuyerAppointments uint64 `json:"buyer_appointments"`
}

// DashboardInputs agrupa as cinco coleções consumidas pelo agregador,
// já normalizadas e recortadas para o usuário logado. Coleções ainda não
// carregadas chegam como slices vazios, nunca nil a ponto de quebrar a
// agregação (len/filter sobre nil é seguro em Go, mas o snapshot garante
// slices inicializados).
type DashboardInputs struct {
	ViewerEmail       string
	Favourites        []*Favourite
	AllProperties     []*Property
	AllUsers          []*User
	OwnerProperties   []*Property
	BuyerAppointments []*Appointment
	Versions          InputVersions
}

// DashboardOverview é a resposta completa da rota de dashboard: tudo que a
// camada de apresentação precisa para renderizar sem computação adicional.
type DashboardOverview struct {
	Heading      string          `json:"heading"`
	DisplayName  string          `json:"display_name"`
	MemberLabel  string          `json:"member_label"`
	Metrics      []MetricCard    `json:"metrics"`
	TableHeading string          `json:"table_heading"`
	TableRows    []TableRow      `json:"table_rows"`
	EmptyMessage string          `json:"empty_message,omitempty"`
	Activity     []ActivityPoint `json:"activity"`
	Versions     InputVersions   `json:"versions"`
}
