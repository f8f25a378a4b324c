package experiment

import (
	"os"

	"sigs.k8s.io/yaml"
)

// LoadFile reads an Experiment from a YAML file at path. sigs.k8s.io/yaml
// round-trips through JSON so the same struct tags work for both formats
// (grounded on descheduler's use of sigs.k8s.io/yaml for its own policy
// config, the only YAML-decoding library in the retrieved pack).
func LoadFile(path string) (Experiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Experiment{}, err
	}
	e := DefaultExperiment()
	if err := yaml.Unmarshal(data, &e); err != nil {
		return Experiment{}, err
	}
	return e, nil
}

// SaveFile writes e as YAML to path, for reproducing a run's exact config.
func SaveFile(path string, e Experiment) error {
	data, err := yaml.Marshal(e)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
