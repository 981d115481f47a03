package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera o código de referência curto usado para identificar imóveis
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}
