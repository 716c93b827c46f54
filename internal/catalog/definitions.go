// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

// withCommon builds a catalog starting with the common variables.
func withCommon(extra Catalog) Catalog {
	out := make(Catalog, 0, len(commonVariables)+len(extra))
	out = append(out, commonVariables...)
	return append(out, extra...)
}

// commonVariables are available in every category.
var commonVariables = Catalog{
	{Key: "customerName", Label: "Asiakkaan nimi", Description: "Asiakkaan koko nimi", ExampleValue: "Matti Meikäläinen"},
	{Key: "customerId", Label: "Asiakkaan ID", Description: "Asiakkaan henkilötunnus", ExampleValue: "123456-7"},
	{Key: "caseId", Label: "Tapausnumero", Description: "Hakemuksen tapausnumero", ExampleValue: "CASE-2025-00012"},
	{Key: "currentDate", Label: "Päivämäärä", Description: "Nykyinen päivämäärä", ExampleValue: "15.01.2026"},
}

// DecisionTemplateVariables is the catalog for decision templates and the
// fallback for unrecognized categories.
var DecisionTemplateVariables = withCommon(Catalog{
	{Key: "applicantName", Label: "Hakijan nimi", Description: "Hakemuksen tekijän nimi", ExampleValue: "Liisa Esimerkki"},
	{Key: "applicationNumber", Label: "Hakemusnumero", Description: "Hakemuksen yksilöllinen numero", ExampleValue: "HAK-2025-12345"},
	{Key: "decisionDate", Label: "Päätöspäivä", Description: "Päätöksen tekemispäivä", ExampleValue: "28.12.2025"},
	{Key: "effectiveDate", Label: "Voimaantulopäivä", Description: "Päätöksen voimaantulopäivä", ExampleValue: "01.02.2026"},
	{Key: "amount", Label: "Summa", Description: "Rahamäärä", ExampleValue: "123,45 €"},
	{Key: "dueDate", Label: "Eräpäivä", Description: "Maksun eräpäivä", ExampleValue: "15.01.2026"},
	{Key: "earningsRequirement", Label: "Ansioehto", Description: "Ansioehtojen täyttyminen", ExampleValue: "Täyttyy"},
	{Key: "eligibility", Label: "Kelpoisuus", Description: "Hakijan kelpoisuus", ExampleValue: "Kelvollinen"},
	{Key: "payment", Label: "Maksu", Description: "Myönnetty maksu", ExampleValue: "850,00"},
	{Key: "allowanceAmount", Label: "Avustussumma", Description: "Myönnetty avustussumma", ExampleValue: "500,00 €"},
	{Key: "purpose", Label: "Käyttötarkoitus", Description: "Avustuksen käyttötarkoitus", ExampleValue: "Liikkumiseen"},
	{Key: "paymentMethod", Label: "Maksutapa", Description: "Maksun toteutustapa", ExampleValue: "Tilisiirto"},
	{Key: "securityAmount", Label: "Turvasumma", Description: "Myönnetty turvasumma", ExampleValue: "750,00 €"},
	{Key: "relocationReason", Label: "Muuton syy", Description: "Muuton perustelu", ExampleValue: "Työn perässä"},
	{Key: "originalApplicationNumber", Label: "Alkuperäinen hakemusnumero", Description: "Alkuperäisen hakemuksen numero", ExampleValue: "HAK-2024-98765"},
	{Key: "correctionApplicationNumber", Label: "Korjaushakemusnumero", Description: "Korjaushakemuksen numero", ExampleValue: "KOR-2025-00001"},
	{Key: "originalDecision", Label: "Alkuperäinen päätös", Description: "Alkuperäisen päätöksen sisältö", ExampleValue: "Hylätty"},
	{Key: "correctedDecision", Label: "Korjattu päätös", Description: "Korjatun päätöksen sisältö", ExampleValue: "Hyväksytty"},
	{Key: "correctionReason", Label: "Korjauksen syy", Description: "Päätöksen korjauksen perustelu", ExampleValue: "Uusi tieto saatu"},
	{Key: "requestedAmount", Label: "Haettu summa", Description: "Hakemassa haettu summa", ExampleValue: "1000,00 €"},
	{Key: "grantedAmount", Label: "Myönnetty summa", Description: "Myönnetty summa", ExampleValue: "800,00 €"},
	{Key: "justification", Label: "Perustelu", Description: "Päätöksen perustelu", ExampleValue: "Hakemus täyttää vaatimukset"},
	{Key: "reason1", Label: "Syy 1", Description: "Ensimmäinen perustelu", ExampleValue: "Tuloraja ylitetty"},
	{Key: "reason2", Label: "Syy 2", Description: "Toinen perustelu", ExampleValue: "Asiakirjat puuttuvat"},
	{Key: "appealInstructions", Label: "Valitusohje", Description: "Ohje valituksen tekemiseen", ExampleValue: "Valitus tehdään 30 päivän kuluessa"},
})

// MessageWelcomeVariables is the catalog for welcome messages.
var MessageWelcomeVariables = withCommon(Catalog{
	{Key: "serviceName", Label: "Palvelun nimi", Description: "Palvelun nimi", ExampleValue: "Ansioturva"},
	{Key: "welcomeMessage", Label: "Tervetuloviesti", Description: "Henkilökohtainen tervetuloviesti", ExampleValue: "Tervetuloa palveluumme!"},
	{Key: "nextSteps", Label: "Seuraavat askeleet", Description: "Ohjeet seuraaviin askeleisiin", ExampleValue: "Täytä hakemus"},
})

// MessageRejectionVariables is the catalog for rejection messages.
var MessageRejectionVariables = withCommon(Catalog{
	{Key: "applicantName", Label: "Hakijan nimi", Description: "Hakemuksen tekijän nimi", ExampleValue: "Liisa Esimerkki"},
	{Key: "applicationNumber", Label: "Hakemusnumero", Description: "Hakemuksen yksilöllinen numero", ExampleValue: "HAK-2025-12345"},
	{Key: "rejectionDate", Label: "Hylkäyspäivä", Description: "Päätöksen tekemispäivä", ExampleValue: "28.12.2025"},
	{Key: "reason1", Label: "Syy 1", Description: "Ensimmäinen perustelu", ExampleValue: "Tuloraja ylitetty"},
	{Key: "reason2", Label: "Syy 2", Description: "Toinen perustelu", ExampleValue: "Asiakirjat puuttuvat"},
	{Key: "appealInstructions", Label: "Valitusohje", Description: "Ohje valituksen tekemiseen", ExampleValue: "Valitus tehdään 30 päivän kuluessa"},
	{Key: "contactInfo", Label: "Yhteystiedot", Description: "Yhteystiedot lisätietoja varten", ExampleValue: "asiakaspalvelu@example.fi"},
})

// MessageApprovalVariables is the catalog for approval messages.
var MessageApprovalVariables = withCommon(Catalog{
	{Key: "applicantName", Label: "Hakijan nimi", Description: "Hakemuksen tekijän nimi", ExampleValue: "Liisa Esimerkki"},
	{Key: "applicationNumber", Label: "Hakemusnumero", Description: "Hakemuksen yksilöllinen numero", ExampleValue: "HAK-2025-12345"},
	{Key: "approvalDate", Label: "Hyväksymispäivä", Description: "Päätöksen tekemispäivä", ExampleValue: "28.12.2025"},
	{Key: "amount", Label: "Summa", Description: "Myönnetty summa", ExampleValue: "850,00 €"},
	{Key: "dueDate", Label: "Eräpäivä", Description: "Maksun eräpäivä", ExampleValue: "15.01.2026"},
	{Key: "nextSteps", Label: "Seuraavat askeleet", Description: "Ohjeet seuraaviin askeleisiin", ExampleValue: "Odotamme vahvistusta"},
})

// MessageNotificationVariables is the catalog for notification-style
// messages (payment notices, reminders, information requests).
var MessageNotificationVariables = withCommon(Catalog{
	{Key: "applicantName", Label: "Hakijan nimi", Description: "Hakemuksen tekijän nimi", ExampleValue: "Liisa Esimerkki"},
	{Key: "applicationNumber", Label: "Hakemusnumero", Description: "Hakemuksen yksilöllinen numero", ExampleValue: "HAK-2025-12345"},
	{Key: "notificationType", Label: "Ilmoituksen tyyppi", Description: "Ilmoituksen tyyppi", ExampleValue: "Päivitys"},
	{Key: "notificationDate", Label: "Ilmoituspäivä", Description: "Ilmoituksen päivämäärä", ExampleValue: "28.12.2025"},
	{Key: "amount", Label: "Summa", Description: "Maksun summa", ExampleValue: "123,45 €"},
	{Key: "dueDate", Label: "Eräpäivä", Description: "Maksun eräpäivä", ExampleValue: "15.01.2026"},
	{Key: "message", Label: "Viesti", Description: "Ilmoituksen viesti", ExampleValue: "Hakemuksesi on käsitelty"},
	{Key: "actionRequired", Label: "Vaadittu toimenpide", Description: "Tarvittaessa vaadittu toimenpide", ExampleValue: "Tarkista tiedot"},
})
