// File: lixenwraith/maskconfig/voices.go
package maskconfig

// Voice describes a speech synthesis voice advertised to content.
type Voice struct {
	Lang         string
	Name         string
	VoiceURI     string
	Default      bool
	LocalService bool
}

// Voices reads the "voices" array from the root object. Entries with a
// missing or wrong-kind field are skipped, not fatal to the list; the
// surviving entries keep their original order. Absence of the array
// itself (or a non-array value) yields ok == false.
func (r *Resolver) Voices() ([]Voice, bool) {
	v, ok := r.member("voices")
	if !ok {
		return nil, false
	}
	arr, ok := v.Array()
	if !ok {
		return nil, false
	}

	voices := make([]Voice, 0, len(arr))
	for _, el := range arr {
		obj, ok := el.Object()
		if !ok {
			continue
		}
		var voice Voice
		if voice.Lang, ok = stringMember(obj, "lang"); !ok {
			continue
		}
		if voice.Name, ok = stringMember(obj, "name"); !ok {
			continue
		}
		if voice.VoiceURI, ok = stringMember(obj, "voiceUri"); !ok {
			continue
		}
		if voice.Default, ok = boolMember(obj, "isDefault"); !ok {
			continue
		}
		if voice.LocalService, ok = boolMember(obj, "isLocalService"); !ok {
			continue
		}
		voices = append(voices, voice)
	}
	return voices, true
}
