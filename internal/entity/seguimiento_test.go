package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMotivoValid(t *testing.T) {
	validos := []Motivo{
		MotivoPrimeraLlamada,
		MotivoSegundaLlamada,
		MotivoTerceraLlamada,
		MotivoEnvioWhatsApp,
		MotivoCancelacion,
	}
	for _, m := range validos {
		assert.True(t, m.Valid(), "motivo %q debería ser válido", m)
	}
}

func TestMotivoInvalid(t *testing.T) {
	invalidos := []Motivo{
		"",
		"LLAMADA INVALIDA",
		"4TA LLAMADA",
		"1ra llamada",              // sensible a mayúsculas
		"CANCELACION DE REGISTRO",  // sin tilde no es el mismo valor
		"ENVÍO DE WHATSAPP",        // el valor del ENUM no lleva tilde
	}
	for _, m := range invalidos {
		assert.False(t, m.Valid(), "motivo %q no debería ser válido", m)
	}
}

func TestEstadoValid(t *testing.T) {
	validos := []Estado{EstadoEnSeguimiento, EstadoCerrado, EstadoPendiente, EstadoFinalizado}
	for _, e := range validos {
		assert.True(t, e.Valid(), "estado %q debería ser válido", e)
	}

	invalidos := []Estado{"", "ABIERTO", "en seguimiento", "CERRADO "}
	for _, e := range invalidos {
		assert.False(t, e.Valid(), "estado %q no debería ser válido", e)
	}
}
