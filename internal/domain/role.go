// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "strings"

// Role identifica a categoria do usuário logado e controla quais métricas
// e qual coleção alimentam o dashboard.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// IsKnown indica se o role é um dos três valores reconhecidos.
// Qualquer outro valor (inclusive vazio) cai no comportamento de admin.
func (r Role) IsKnown() bool {
	return r == RoleBuyer || r == RoleSeller || r == RoleAdmin
}

// DisplayLabel retorna o rótulo do role exibido no cabeçalho do dashboard,
// capitalizado para exibição direta (ex: "Buyer"). Roles vazios viram "User".
func (r Role) DisplayLabel() string {
	if r == "" {
		return "User"
	}

	label := string(r)
	return strings.ToUpper(label[:1]) + label[1:]
}
