package clause

import (
	"fmt"
	"strings"

	"metrocontratos/cmd/internal/domain/entity"
)

type ReverseEngineeringData struct {
	Part         string   `json:"peca_equipamento"`
	Purpose      string   `json:"finalidade"`
	Deliverables []string `json:"entregaveis"`
	IPOwner      string   `json:"titularidade"`
	Samples      int      `json:"quantidade_amostras"`
	Destructive  bool     `json:"ensaio_destrutivo"`
	DeadlineDays int      `json:"prazo_entrega_dias"`
}

func (*ReverseEngineeringData) ContractType() entity.ContractType {
	return entity.ContractReverseEngineering
}

func ReverseEngineeringClauses(d *ReverseEngineeringData) []Section {
	samples := "A CONTRATANTE fornecerá as amostras necessárias à execução dos serviços, em quantidade definida pela CONTRATADA."
	if d.Samples > 0 {
		samples = fmt.Sprintf("A CONTRATANTE fornecerá %d amostra(s) do objeto para execução dos serviços.", d.Samples)
	}
	if d.Destructive {
		samples += " A CONTRATANTE declara ciência de que os ensaios previstos são destrutivos e de que as amostras não serão devolvidas em seu estado original."
	} else {
		samples += " As amostras serão devolvidas ao final dos serviços, preservado o desgaste inerente aos ensaios não destrutivos."
	}

	owner := "A propriedade intelectual sobre os desenhos, modelos e relatórios produzidos será da CONTRATANTE após a quitação integral do contrato."
	if strings.EqualFold(strings.TrimSpace(d.IPOwner), "contratada") {
		owner = "A propriedade intelectual sobre os desenhos, modelos e relatórios produzidos permanecerá com a CONTRATADA, que concede à CONTRATANTE licença de uso não exclusiva e por prazo indeterminado."
	}

	deadline := "no prazo definido na proposta comercial"
	if d.DeadlineDays > 0 {
		deadline = fmt.Sprintf("em até %d dias contados do recebimento das amostras", d.DeadlineDays)
	}

	return []Section{
		section("DO OBJETO DA ENGENHARIA REVERSA",
			fmt.Sprintf("Os serviços consistem no levantamento dimensional, na análise e na documentação técnica de %s.", or(d.Part, "peça ou equipamento indicado pela CONTRATANTE")),
		),
		section("DA FINALIDADE",
			fmt.Sprintf("Os resultados destinam-se a %s.", strings.TrimRight(or(d.Purpose, "reposição, manutenção ou melhoria de componentes de uso próprio da CONTRATANTE"), ".")),
		),
		section("DA DECLARAÇÃO DE LEGITIMIDADE",
			"A CONTRATANTE declara ser legítima possuidora do objeto e que a engenharia reversa não viola patentes, desenhos industriais, segredos de negócio ou contratos com terceiros, assumindo integral responsabilidade perante estes.",
		),
		section("DAS AMOSTRAS", samples),
		section("DOS ENTREGÁVEIS",
			fmt.Sprintf("A CONTRATADA entregará, %s:", deadline),
			listItems(d.Deliverables, "Relatório dimensional, desenho técnico em formato eletrônico e memorial descritivo do objeto."),
		),
		section("DAS INCERTEZAS DE MEDIÇÃO",
			"As dimensões levantadas serão acompanhadas das respectivas incertezas de medição, e tolerâncias de projeto não verificáveis na amostra serão indicadas como estimadas.",
		),
		section("DA PROPRIEDADE INTELECTUAL", owner),
		section("DO SIGILO DO OBJETO",
			"A CONTRATADA não divulgará, reproduzirá ou utilizará os dados obtidos para fins próprios ou de terceiros, aplicando-se a cláusula de confidencialidade deste contrato.",
		),
		section("DA RESPONSABILIDADE PELO USO",
			"A fabricação, homologação e utilização de peças a partir dos resultados são de responsabilidade exclusiva da CONTRATANTE, não respondendo a CONTRATADA por falhas de fabricação ou aplicação.",
		),
	}
}
