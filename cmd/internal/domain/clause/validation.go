package clause

import (
	"fmt"
	"strings"

	"metrocontratos/cmd/internal/domain/entity"
)

type ValidationData struct {
	Object             string   `json:"objeto_validacao"`
	Items              []string `json:"itens"`
	Protocols          []string `json:"protocolos"`
	Standard           string   `json:"norma_referencia"`
	RevalidationMonths int      `json:"periodicidade_revalidacao_meses"`
	ApprovalBy         string   `json:"aprovador"`
}

func (*ValidationData) ContractType() entity.ContractType { return entity.ContractValidation }

func ValidationClauses(d *ValidationData) []Section {
	protocols := "qualificação de instalação (QI), qualificação de operação (QO) e qualificação de desempenho (QD)"
	if p := join(d.Protocols); p != "" {
		protocols = p
	}

	revalidation := "A periodicidade de revalidação será definida pela CONTRATANTE com base em análise de risco."
	if d.RevalidationMonths > 0 {
		revalidation = fmt.Sprintf("Recomenda-se a revalidação a cada %d meses ou sempre que houver alteração significativa no objeto validado.", d.RevalidationMonths)
	}

	return []Section{
		section("DO OBJETO DA VALIDAÇÃO",
			fmt.Sprintf("Serão validados %s, a saber:", or(d.Object, "os equipamentos, sistemas e processos indicados pela CONTRATANTE")),
			listItems(d.Items, "Os itens relacionados no plano mestre de validação aprovado pelas partes."),
		),
		section("DAS ETAPAS DE QUALIFICAÇÃO",
			fmt.Sprintf("A validação compreenderá as etapas de %s.", protocols),
		),
		section("DA REFERÊNCIA NORMATIVA",
			fmt.Sprintf("Os trabalhos observarão %s.", or(d.Standard, "as boas práticas de fabricação aplicáveis e as diretrizes regulatórias vigentes")),
		),
		section("DOS PROTOCOLOS",
			fmt.Sprintf("Os protocolos de validação serão submetidos à aprovação de %s antes da execução, e nenhum teste será iniciado sem protocolo aprovado.", approver(d.ApprovalBy)),
		),
		section("DA EXECUÇÃO DOS TESTES",
			"A CONTRATANTE disponibilizará os equipamentos, materiais, utilidades e pessoal de acompanhamento necessários à execução dos testes previstos nos protocolos.",
		),
		section("DOS DESVIOS",
			"Desvios identificados durante a execução serão registrados, investigados e tratados antes da conclusão do relatório, podendo implicar a repetição de testes mediante aditivo de preço.",
		),
		section("DOS RELATÓRIOS",
			"Ao final de cada etapa será emitido relatório com os resultados obtidos, os desvios e a conclusão sobre o atendimento aos critérios de aceitação.",
		),
		section("DA REVALIDAÇÃO", revalidation),
		section("DA RESPONSABILIDADE REGULATÓRIA",
			fmt.Sprintf("A liberação do objeto validado para uso e a responsabilidade perante os órgãos reguladores cabem exclusivamente à CONTRATANTE. A CONTRATADA manterá os registros pelo prazo de %s anos.", Count(RecordRetentionYears)),
		),
	}
}

func approver(a string) string {
	if a = strings.TrimSpace(a); a == "" {
		return "a garantia da qualidade da CONTRATANTE"
	}
	return a
}
