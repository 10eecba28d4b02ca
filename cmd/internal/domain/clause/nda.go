package clause

import (
	"fmt"
	"strings"

	"metrocontratos/cmd/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// NDAData configures a non-disclosure agreement. Mutual is a pointer because
// the default (reciprocal) differs from the zero value.
type NDAData struct {
	Purpose          string          `json:"finalidade"`
	DurationYears    int             `json:"prazo_anos"`
	Mutual           *bool           `json:"reciproco"`
	InformationTypes []string        `json:"tipos_informacao"`
	Penalty          decimal.Decimal `json:"multa"`
	ReturnDays       int             `json:"prazo_devolucao_dias"`
}

func (*NDAData) ContractType() entity.ContractType { return entity.ContractNonDisclosure }

func NDAClauses(d *NDAData) []Section {
	mutual := d.Mutual == nil || *d.Mutual

	parties := "As obrigações deste instrumento são recíprocas, aplicando-se igualmente à parte que divulga e à parte que recebe as informações."
	receiver := "a parte receptora"
	if !mutual {
		parties = "As obrigações deste instrumento aplicam-se à CONTRATADA, na qualidade de parte receptora das informações da CONTRATANTE."
		receiver = "a CONTRATADA"
	}

	duration := Count(ConfidentialityYears) + " anos"
	if d.DurationYears > 0 {
		duration = fmt.Sprintf("%d anos", d.DurationYears)
	}

	returnDays := "10 (dez) dias"
	if d.ReturnDays > 0 {
		returnDays = fmt.Sprintf("%d dias", d.ReturnDays)
	}

	penalty := "A violação das obrigações de sigilo sujeitará a parte infratora ao pagamento de perdas e danos apurados, sem prejuízo das medidas judiciais cabíveis."
	if d.Penalty.IsPositive() {
		penalty = fmt.Sprintf("A violação das obrigações de sigilo sujeitará a parte infratora ao pagamento de multa não compensatória de %s, sem prejuízo da indenização por perdas e danos excedentes.", Money(d.Penalty))
	}

	return []Section{
		section("DA FINALIDADE",
			fmt.Sprintf("As informações confidenciais serão trocadas exclusivamente para %s, sendo vedado seu uso para qualquer outro fim.", strings.TrimRight(or(d.Purpose, "a avaliação e a execução de serviços técnicos entre as partes"), ".")),
		),
		section("DA RECIPROCIDADE", parties),
		section("DAS INFORMAÇÕES CONFIDENCIAIS",
			"Consideram-se confidenciais todas as informações técnicas, comerciais, financeiras e estratégicas divulgadas por qualquer meio, incluindo:",
			listItems(d.InformationTypes, "Desenhos, especificações, procedimentos, resultados de medições, listas de clientes, preços e know-how."),
		),
		section("DAS EXCEÇÕES",
			"Não são confidenciais as informações que já eram de domínio público, que foram obtidas legitimamente de terceiros sem dever de sigilo ou cuja divulgação seja exigida por lei ou ordem judicial, hipótese em que a outra parte será previamente comunicada.",
		),
		section("DO DEVER DE PROTEÇÃO",
			fmt.Sprintf("Compete a %s proteger as informações com o mesmo grau de cuidado dispensado às suas próprias informações sigilosas, restringindo o acesso aos colaboradores que delas necessitem.", receiver),
		),
		section("DO PRAZO DE SIGILO",
			fmt.Sprintf("As obrigações de sigilo vigorarão durante o relacionamento entre as partes e por %s após o seu término.", duration),
		),
		section("DA DEVOLUÇÃO DAS INFORMAÇÕES",
			fmt.Sprintf("Encerrado o relacionamento ou mediante solicitação, as informações e suas cópias serão devolvidas ou destruídas em até %s, com declaração escrita nesse sentido.", returnDays),
		),
		section("DA PROPRIEDADE INTELECTUAL",
			"A divulgação de informações não implica cessão ou licença de direitos de propriedade intelectual, que permanecem com a parte reveladora.",
		),
		section("DAS PENALIDADES", penalty),
	}
}
