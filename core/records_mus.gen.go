// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	mapMf4x726PzrO7wZgA9skzvAΞΞ   = ord.NewMapSer[string, string](ord.String, ord.String)
	slice5ajxwkr5hOj2Epok6iugtQΞΞ = ord.NewSliceSer[float32](varint.Float32)
	slicei7aKBBOiMlxhXnd5LUXDswΞΞ = ord.NewSliceSer[string](ord.String)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var GenderMUS = genderMUS{}

type genderMUS struct{}

func (s genderMUS) Marshal(v Gender, bs []byte) (n int) {
	return ord.String.Marshal(string(v), bs)
}

func (s genderMUS) Unmarshal(bs []byte) (v Gender, n int, err error) {
	tmp, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v = Gender(tmp)
	return
}

func (s genderMUS) Size(v Gender) (size int) {
	return ord.String.Size(string(v))
}

func (s genderMUS) Skip(bs []byte) (n int, err error) {
	return ord.String.Skip(bs)
}

var PopularityTierMUS = popularityTierMUS{}

type popularityTierMUS struct{}

func (s popularityTierMUS) Marshal(v PopularityTier, bs []byte) (n int) {
	return ord.String.Marshal(string(v), bs)
}

func (s popularityTierMUS) Unmarshal(bs []byte) (v PopularityTier, n int, err error) {
	tmp, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v = PopularityTier(tmp)
	return
}

func (s popularityTierMUS) Size(v PopularityTier) (size int) {
	return ord.String.Size(string(v))
}

func (s popularityTierMUS) Skip(bs []byte) (n int, err error) {
	return ord.String.Skip(bs)
}

var NameRecordMUS = nameRecordMUS{}

type nameRecordMUS struct{}

func (s nameRecordMUS) Marshal(v NameRecord, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Name, bs[n:])
	n += GenderMUS.Marshal(v.Gender, bs[n:])
	n += mapMf4x726PzrO7wZgA9skzvAΞΞ.Marshal(v.Spellings, bs[n:])
	n += varint.Int.Marshal(v.Syllables, bs[n:])
	n += ord.String.Marshal(v.PhoneticStart, bs[n:])
	n += ord.String.Marshal(v.Deity, bs[n:])
	n += slicei7aKBBOiMlxhXnd5LUXDswΞΞ.Marshal(v.Sources, bs[n:])
	n += ord.String.Marshal(v.Meaning, bs[n:])
	n += ord.String.Marshal(v.Language, bs[n:])
	n += slicei7aKBBOiMlxhXnd5LUXDswΞΞ.Marshal(v.Regions, bs[n:])
	n += varint.Int.Marshal(v.Modernity, bs[n:])
	n += varint.Int.Marshal(v.GlobalEase, bs[n:])
	n += slicei7aKBBOiMlxhXnd5LUXDswΞΞ.Marshal(v.Nicknames, bs[n:])
	n += slicei7aKBBOiMlxhXnd5LUXDswΞΞ.Marshal(v.Related, bs[n:])
	n += PopularityTierMUS.Marshal(v.Popularity, bs[n:])
	n += slice5ajxwkr5hOj2Epok6iugtQΞΞ.Marshal(v.Vector, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s nameRecordMUS) Unmarshal(bs []byte) (v NameRecord, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Gender, n1, err = GenderMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Spellings, n1, err = mapMf4x726PzrO7wZgA9skzvAΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Syllables, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.PhoneticStart, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Deity, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Sources, n1, err = slicei7aKBBOiMlxhXnd5LUXDswΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Meaning, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Language, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Regions, n1, err = slicei7aKBBOiMlxhXnd5LUXDswΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Modernity, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.GlobalEase, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Nicknames, n1, err = slicei7aKBBOiMlxhXnd5LUXDswΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Related, n1, err = slicei7aKBBOiMlxhXnd5LUXDswΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Popularity, n1, err = PopularityTierMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vector, n1, err = slice5ajxwkr5hOj2Epok6iugtQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s nameRecordMUS) Size(v NameRecord) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Name)
	size += GenderMUS.Size(v.Gender)
	size += mapMf4x726PzrO7wZgA9skzvAΞΞ.Size(v.Spellings)
	size += varint.Int.Size(v.Syllables)
	size += ord.String.Size(v.PhoneticStart)
	size += ord.String.Size(v.Deity)
	size += slicei7aKBBOiMlxhXnd5LUXDswΞΞ.Size(v.Sources)
	size += ord.String.Size(v.Meaning)
	size += ord.String.Size(v.Language)
	size += slicei7aKBBOiMlxhXnd5LUXDswΞΞ.Size(v.Regions)
	size += varint.Int.Size(v.Modernity)
	size += varint.Int.Size(v.GlobalEase)
	size += slicei7aKBBOiMlxhXnd5LUXDswΞΞ.Size(v.Nicknames)
	size += slicei7aKBBOiMlxhXnd5LUXDswΞΞ.Size(v.Related)
	size += PopularityTierMUS.Size(v.Popularity)
	size += slice5ajxwkr5hOj2Epok6iugtQΞΞ.Size(v.Vector)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s nameRecordMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = GenderMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = mapMf4x726PzrO7wZgA9skzvAΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicei7aKBBOiMlxhXnd5LUXDswΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicei7aKBBOiMlxhXnd5LUXDswΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicei7aKBBOiMlxhXnd5LUXDswΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicei7aKBBOiMlxhXnd5LUXDswΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = PopularityTierMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slice5ajxwkr5hOj2Epok6iugtQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
