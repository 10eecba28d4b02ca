package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientTaxID(t *testing.T) {
	legal := &Client{PersonType: PersonLegal, CNPJ: "11.222.333/0001-81", CPF: "529.982.247-25"}
	assert.Equal(t, "CNPJ", legal.TaxIDLabel())
	assert.Equal(t, "11.222.333/0001-81", legal.TaxID())

	individual := &Client{PersonType: PersonIndividual, CPF: "529.982.247-25"}
	assert.True(t, individual.IsIndividual())
	assert.Equal(t, "CPF", individual.TaxIDLabel())
	assert.Equal(t, "529.982.247-25", individual.TaxID())

	// anything unrecognized is a legal entity
	assert.False(t, (&Client{PersonType: "outro"}).IsIndividual())
}

func TestAddress(t *testing.T) {
	c := &Client{Street: "Rua A", Number: "10", City: "Campinas", State: "SP", ZipCode: "13000-000"}
	assert.Equal(t, "Rua A, 10, Campinas/SP, CEP 13000-000", c.Address())
	assert.Equal(t, "Campinas", (&Client{City: " Campinas "}).Address())
	assert.Empty(t, (&Client{}).Address())

	assert.Equal(t, "Rua dos Instrumentos, 150, Sala 2, Distrito Industrial, Campinas/SP, CEP 13069-000", DefaultCompanyProfile().Address())
}
