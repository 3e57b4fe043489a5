package apiclient

import (
	_ "embed"

	"flowerdelivery/internal/core/application/usecases/queries"
	"flowerdelivery/internal/core/domain/model/contact"

	"gopkg.in/yaml.v3"
)

//go:embed sample_contacts.yaml
var sampleContactsYAML []byte

type sampleContact struct {
	ID           string   `yaml:"id"`
	BusinessName string   `yaml:"businessName"`
	Phones       []string `yaml:"phones"`
	Address      string   `yaml:"address"`
	Note         string   `yaml:"note"`
}

// SampleContacts returns the bundled demo address book entries whose business
// name contains search, ignoring case. An empty search returns them all.
func SampleContacts(search string) ([]queries.ContactView, error) {
	var samples []sampleContact
	if err := yaml.Unmarshal(sampleContactsYAML, &samples); err != nil {
		return nil, err
	}

	contacts := make([]queries.ContactView, 0, len(samples))
	for _, s := range samples {
		if !contact.NameMatches(s.BusinessName, search) {
			continue
		}
		contacts = append(contacts, queries.ContactView{
			ID:           s.ID,
			BusinessName: s.BusinessName,
			Phones:       s.Phones,
			Address:      s.Address,
			Note:         s.Note,
		})
	}
	return contacts, nil
}
